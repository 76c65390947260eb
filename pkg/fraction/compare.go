// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

// Cmp compares f and g exactly and returns -1 if f < g, 0 if f == g, and +1 if
// f > g.
func (f Fraction) Cmp(g Fraction) int {
	a, b := f.parts()
	p, q := g.parts()
	return new(big.Int).Mul(a, q).Cmp(new(big.Int).Mul(b, p))
}

// CmpInt compares the float value of f with k.
func (f Fraction) CmpInt(k int64) int {
	c, _ := compareOperands(operand{kind: KindFraction, f: f}, operand{kind: KindInteger, i: big.NewInt(k)})
	return c
}

// CmpFloat compares the float value of f with x. CmpFloat returns false if x
// is NaN.
func (f Fraction) CmpFloat(x float64) (int, bool) {
	return compareFloats(f.Float64(), x)
}

// Compare compares f with an integer, a float64, or a Fraction. Fractions are
// compared exactly. Integers and floats are compared with the float value of
// f. Compare returns false if v is not comparable, that is if v has an
// unsupported type or is NaN.
func (f Fraction) Compare(v interface{}) (int, bool) {
	return compareOperands(operand{kind: KindFraction, f: f}, operandOf(v))
}

// Equal returns true if f is equal to v. Values that cannot be compared with
// f are not equal to it.
func (f Fraction) Equal(v interface{}) bool {
	c, ok := f.Compare(v)
	return ok && c == 0
}

// Less returns true if f < v.
func (f Fraction) Less(v interface{}) bool {
	c, ok := f.Compare(v)
	return ok && c < 0
}

// LessEqual returns true if f ≤ v.
func (f Fraction) LessEqual(v interface{}) bool {
	c, ok := f.Compare(v)
	return ok && c <= 0
}

// Greater returns true if f > v.
func (f Fraction) Greater(v interface{}) bool {
	c, ok := f.Compare(v)
	return ok && c > 0
}

// GreaterEqual returns true if f ≥ v.
func (f Fraction) GreaterEqual(v interface{}) bool {
	c, ok := f.Compare(v)
	return ok && c >= 0
}

// Compare compares two numbers, at least one of which should be a Fraction,
// with the same rules as [Fraction.Compare]. Compare returns NotComparable if
// the values cannot be compared.
func Compare(x, y interface{}) (int, error) {
	c, ok := compareOperands(operandOf(x), operandOf(y))
	if !ok {
		return 0, errors.NotComparable.WithFormat("cannot compare %T with %T", x, y)
	}
	return c, nil
}

func compareOperands(a, b operand) (int, bool) {
	if a.kind == KindUnsupported || b.kind == KindUnsupported {
		return 0, false
	}

	switch {
	case a.kind == KindFraction && b.kind == KindFraction:
		return a.f.Cmp(b.f), true

	case a.kind == KindInteger && b.kind == KindInteger:
		return a.i.Cmp(b.i), true

	case a.kind == KindInteger:
		// Integers are compared exactly with the float value of the other
		// operand
		c, ok := compareIntFloat(a.i, b.float())
		return c, ok

	case b.kind == KindInteger:
		c, ok := compareIntFloat(b.i, a.float())
		return -c, ok

	default:
		return compareFloats(a.float(), b.float())
	}
}

func compareIntFloat(i *big.Int, x float64) (int, bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	return new(big.Float).SetInt(i).Cmp(new(big.Float).SetFloat64(x)), true
}

func compareFloats(x, y float64) (int, bool) {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return 0, false
	case x < y:
		return -1, true
	case x > y:
		return +1, true
	default:
		return 0, true
	}
}

// Hash returns a hash of the float value of f, so that a fraction hashes the
// same as an equal float64 or integer ([HashFloat], [HashInt]). Distinct
// fractions that round to the same float64 collide, which is only a concern
// for very large numerators or denominators.
func (f Fraction) Hash() uint64 {
	return HashFloat(f.Float64())
}

// HashFloat returns the hash of x as used by [Fraction.Hash]. Positive and
// negative zero hash the same.
func HashFloat(x float64) uint64 {
	if x == 0 {
		x = 0
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(x))
	return xxhash.Sum64(b[:])
}

// HashInt returns the hash of k as used by [Fraction.Hash].
func HashInt(k int64) uint64 {
	return HashFloat(float64(k))
}

// Hash returns the hash of an integer, a float64, or a Fraction, such that
// equal values hash the same. Hash returns false for unsupported types.
func Hash(v interface{}) (uint64, bool) {
	o := operandOf(v)
	if o.kind == KindUnsupported {
		return 0, false
	}
	return HashFloat(o.float()), true
}
