// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"math"
	"math/big"
)

// FromFloat converts value to a fraction with the given number of decimal
// digits of precision, which must be between 0 and [MaxPrecision]. The value
// is scaled by 10^precision and rounded half away from zero, and the result is
// reduced. For example FromFloat(0.3, 8) is 3/10 and FromFloat(0.7, 0) is 1.
//
// FromFloat returns OutOfRange if the precision is invalid or the scaled value
// overflows, and InvalidArgument if value is NaN or infinite.
func FromFloat(value float64, precision int) (Fraction, error) {
	if precision < 0 || precision > MaxPrecision {
		return Fraction{}, precisionOutOfRange(precision)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Fraction{}, notFinite(value)
	}

	// The product must be rounded before the half is added. The explicit
	// conversion prevents fusing into a single multiply-add.
	scale := math.Pow10(precision)
	var n float64
	if value < 0 {
		n = math.Ceil(float64(value*scale) - 0.5)
	} else {
		n = math.Floor(float64(value*scale) + 0.5)
	}
	if math.IsInf(n, 0) {
		return Fraction{}, tooLarge(value, precision)
	}

	num, _ := new(big.Float).SetFloat64(n).Int(nil)
	return reduce(num, big.NewInt(int64(scale))), nil
}

// Float64 returns the nearest float64 value of f. The result may be ±Inf or
// lose precision if the numerator or denominator is very large.
func (f Fraction) Float64() float64 {
	if f.den == nil {
		n, _ := f.parts()
		x, _ := new(big.Float).SetInt(n).Float64()
		return x
	}
	x, _ := f.Rat().Float64()
	return x
}

// Int returns f truncated toward zero. Int uses integer division so it is
// exact regardless of the magnitude of f.
func (f Fraction) Int() *big.Int {
	n, d := f.parts()
	return new(big.Int).Quo(n, d)
}

// Int64 returns f truncated toward zero and whether the result fits in an
// int64.
func (f Fraction) Int64() (int64, bool) {
	v := f.Int()
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}
