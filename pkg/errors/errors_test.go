// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors_test

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/fraction/internal/encoding"
	. "gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

func TestCode(t *testing.T) {
	require.Equal(t, Status(0), Code(nil))
	require.Equal(t, Status(0), Code(io.EOF))
	require.Equal(t, DivisionByZero, Code(DivisionByZero))
	require.Equal(t, BadFormat, Code(BadFormat.With("bad")))
	require.Equal(t, BadFormat, Code(fmt.Errorf("outer: %w", BadFormat.With("bad"))))

	// Unknown errors report the code of their cause
	err := UnknownError.Wrap(DivisionByZero.With("cannot divide by zero"))
	require.Equal(t, DivisionByZero, Code(err))
}

func TestWithFormat(t *testing.T) {
	cause := DivisionByZero.With("cannot divide by zero")
	err := BadRequest.WithFormat("tolerance: %w", cause)
	require.Equal(t, "tolerance: cannot divide by zero", err.Error())
	require.Equal(t, BadRequest, Code(err))
	require.True(t, Is(err, DivisionByZero))
	require.True(t, Is(err, BadRequest))
	require.False(t, Is(err, BadFormat))

	err = BadFormat.WithFormat("%q is not a number", "x")
	require.Equal(t, `"x" is not a number`, err.Error())
	require.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	require.NoError(t, EncodingError.Wrap(nil))

	err := InternalError.Wrap(io.EOF)
	require.Equal(t, InternalError, Code(err))
	require.Equal(t, io.EOF.Error(), err.Error())
}

func TestEncodingErrors(t *testing.T) {
	err := UnknownError.Wrap(encoding.Error{E: fmt.Errorf("Numerator: %w", encoding.ErrNotEnoughData)})
	require.Equal(t, EncodingError, Code(err))
	require.Contains(t, err.Error(), "not enough data")
}

func TestErrorMessage(t *testing.T) {
	var err error = NotComparable.With()
	require.Equal(t, "notComparable", err.Error())
	require.Equal(t, "notComparable", fmt.Sprintf("%+v", err))
}

func TestStatus(t *testing.T) {
	require.True(t, OK.Success())
	require.False(t, DivisionByZero.Success())
	require.True(t, DivisionByZero.IsClientError())
	require.False(t, DivisionByZero.IsServerError())
	require.True(t, EncodingError.IsServerError())
	require.False(t, UnknownError.IsKnownError())
	require.Equal(t, "Status:999", Status(999).String())

	var s Status
	require.True(t, s.SetEnumValue(402))
	require.Equal(t, DivisionByZero, s)
	require.False(t, s.SetEnumValue(999))

	b, err := json.Marshal(BadFormat)
	require.NoError(t, err)
	require.Equal(t, `"badFormat"`, string(b))
	require.NoError(t, json.Unmarshal([]byte(`"OutOfRange"`), &s))
	require.Equal(t, OutOfRange, s)
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &s))
}
