// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

func zeroDenominator() error {
	return errors.DivisionByZero.Skip(1).With("zero denominator is not permitted")
}

func zeroDivisor() error {
	return errors.DivisionByZero.Skip(1).With("cannot divide by zero")
}

func noReciprocal() error {
	return errors.DivisionByZero.Skip(1).With("zero has no reciprocal")
}

func nilArgument() error {
	return errors.InvalidArgument.Skip(1).With("numerator and denominator must not be nil")
}

func unsupportedArgs(n, d interface{}) error {
	return errors.InvalidArgument.Skip(1).WithFormat("numerator and denominator must be integers, floats, or fractions, got %T and %T", n, d)
}

func unsupportedOperands(op Op, x, y interface{}) error {
	return errors.NotSupported.Skip(1).WithFormat("%v is not supported for these operand types: %T and %T", op, x, y)
}

func precisionOutOfRange(p int) error {
	return errors.OutOfRange.Skip(1).WithFormat("precision must be between 0 and %d, got %d", MaxPrecision, p)
}

func notFinite(x float64) error {
	return errors.InvalidArgument.Skip(1).WithFormat("%v cannot be converted to a fraction", x)
}

func tooLarge(x float64, precision int) error {
	return errors.OutOfRange.Skip(1).WithFormat("%v is too large to convert with precision %d", x, precision)
}

func badFormat(s string) error {
	return errors.BadFormat.Skip(1).WithFormat("%q is not a valid fraction", s)
}

func notText(v interface{}) error {
	return errors.InvalidArgument.Skip(1).WithFormat("input must be a string, got %T", v)
}
