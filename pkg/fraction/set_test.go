// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

func TestSet(t *testing.T) {
	s, err := NewSet(MustNew(1, 2), 0.5, MustNew(2, 4))
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Has(0.5))
	require.True(t, s.Has(MustNew(3, 6)))
	require.False(t, s.Has("1/2"))
	require.False(t, s.Has(1))

	// The first value added is retained
	require.Len(t, s.Values(), 1)
	require.IsType(t, Fraction{}, s.Values()[0])

	added, err := s.Add(1)
	require.NoError(t, err)
	require.True(t, added)
	added, err = s.Add(MustNew(2, 2))
	require.NoError(t, err)
	require.False(t, added)
	added, err = s.Add(1.0)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 2, s.Len())

	_, err = s.Add("x")
	require.ErrorIs(t, err, errors.InvalidArgument)

	require.True(t, s.Remove(0.5))
	require.False(t, s.Remove(0.5))
	require.False(t, s.Remove("x"))
	require.Equal(t, 1, s.Len())
	require.True(t, s.Has(MustNew(1, 1)))
}

func TestSetZeroValue(t *testing.T) {
	var s Set
	require.Zero(t, s.Len())
	require.False(t, s.Has(0))
	require.Empty(t, s.Values())

	added, err := s.Add(Fraction{})
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, s.Has(0.0))
	require.True(t, s.Has(-0.0))
}
