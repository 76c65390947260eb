// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package fraction implements exact rational numbers that are always kept in
// lowest terms with a positive denominator.
package fraction

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// DefaultPrecision is the number of decimal digits used when a float is
// converted implicitly, for example by [New].
const DefaultPrecision = 4

// MaxPrecision is the largest precision accepted by [FromFloat].
const MaxPrecision = 8

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Fraction is an immutable rational number. The numerator and denominator are
// fully reduced and the denominator is positive, so the sign is carried by the
// numerator. The zero value is 0/1.
//
// Fractions must be compared with [Fraction.Equal] or [Fraction.Cmp], not ==.
type Fraction struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1
}

// New creates a fraction from a numerator and a denominator, each of which may
// be an integer, a float64, or a Fraction. Floats are converted with
// [FromFloat] using [DefaultPrecision]. If either argument is not an integer,
// the arguments are combined as (n1·d2)/(d1·n2) where n1/d1 and n2/d2 are the
// numerator and denominator arguments as fractions, that is the numerator
// divided by the denominator.
//
// New returns InvalidArgument if either argument has an unsupported type and
// DivisionByZero if the resolved denominator is zero.
func New(n, d interface{}) (Fraction, error) {
	if KindOf(n) == KindUnsupported || KindOf(d) == KindUnsupported {
		return Fraction{}, unsupportedArgs(n, d)
	}

	a, err := resolve(n)
	if err != nil {
		return Fraction{}, err
	}
	b, err := resolve(d)
	if err != nil {
		return Fraction{}, err
	}

	an, ad := a.parts()
	bn, bd := b.parts()
	return normalize(
		new(big.Int).Mul(an, bd),
		new(big.Int).Mul(ad, bn))
}

// MustNew calls New and panics if it returns an error.
func MustNew(n, d interface{}) Fraction {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: big.NewInt(n)}
}

// FromInts returns n/d in lowest terms.
func FromInts[T constraints.Integer](n, d T) (Fraction, error) {
	return normalize(bigOf(n), bigOf(d))
}

// FromBig returns n/d in lowest terms. The arguments are not retained.
func FromBig(n, d *big.Int) (Fraction, error) {
	if n == nil || d == nil {
		return Fraction{}, nilArgument()
	}
	return normalize(new(big.Int).Set(n), new(big.Int).Set(d))
}

// FromRat returns the value of r.
func FromRat(r *big.Rat) Fraction {
	return reduce(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
}

func bigOf[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// normalize takes ownership of n and d.
func normalize(n, d *big.Int) (Fraction, error) {
	if d.Sign() == 0 {
		return Fraction{}, zeroDenominator()
	}
	return reduce(n, d), nil
}

// reduce takes ownership of n and d, which must be non-zero.
func reduce(n, d *big.Int) Fraction {
	if n.Sign() == 0 {
		return Fraction{}
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	if d.Cmp(bigOne) == 0 {
		d = nil
	}
	return Fraction{num: n, den: d}
}

// parts returns the numerator and denominator. The results must not be
// modified.
func (f Fraction) parts() (num, den *big.Int) {
	num, den = f.num, f.den
	if num == nil {
		num = bigZero
	}
	if den == nil {
		den = bigOne
	}
	return num, den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	n, _ := f.parts()
	return new(big.Int).Set(n)
}

// Denom returns a copy of the denominator, which is always positive.
func (f Fraction) Denom() *big.Int {
	_, d := f.parts()
	return new(big.Int).Set(d)
}

// Tuple returns copies of the reduced numerator and denominator.
func (f Fraction) Tuple() (num, den *big.Int) {
	return f.Num(), f.Denom()
}

// Rat returns the value as a [big.Rat].
func (f Fraction) Rat() *big.Rat {
	n, d := f.parts()
	return new(big.Rat).SetFrac(n, d)
}

// Sign returns -1, 0, or +1 depending on the sign of f.
func (f Fraction) Sign() int {
	n, _ := f.parts()
	return n.Sign()
}

// IsZero returns true if f is zero.
func (f Fraction) IsZero() bool { return f.Sign() == 0 }

// Bool returns the truth value of f, which is false only for zero.
func (f Fraction) Bool() bool { return !f.IsZero() }

// IsProper returns true if the magnitude of the numerator is less than the
// denominator.
func (f Fraction) IsProper() bool {
	n, d := f.parts()
	return n.CmpAbs(d) < 0
}

// IsImproper returns true if the magnitude of the numerator is greater than or
// equal to the denominator.
func (f Fraction) IsImproper() bool {
	return !f.IsProper()
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	n, d := f.parts()
	return reduce(new(big.Int).Neg(n), new(big.Int).Set(d))
}

// Pos returns a fraction equal to f.
func (f Fraction) Pos() Fraction {
	n, d := f.parts()
	return reduce(new(big.Int).Set(n), new(big.Int).Set(d))
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	n, d := f.parts()
	return reduce(new(big.Int).Abs(n), new(big.Int).Abs(d))
}

// Reciprocal returns 1/f. Zero has no reciprocal.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, noReciprocal()
	}
	n, d := f.parts()
	return reduce(new(big.Int).Set(d), new(big.Int).Set(n)), nil
}
