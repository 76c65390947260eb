// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package internal

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
)

func TestFractionFlag(t *testing.T) {
	var v fraction.Fraction
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Var(FractionFlag{&v}, "value", "")

	require.NoError(t, flags.Parse([]string{"--value", "2/4"}))
	require.Equal(t, "1/2", v.Canonical())
	require.Equal(t, "1/2", flags.Lookup("value").Value.String())

	err := FractionFlag{&v}.Set("1/0")
	require.Equal(t, errors.DivisionByZero, errors.Code(err))
	require.Equal(t, "1/2", v.Canonical())

	err = FractionFlag{&v}.Set("x")
	require.Equal(t, errors.BadFormat, errors.Code(err))

	require.Equal(t, "", FractionFlag{}.String())
}
