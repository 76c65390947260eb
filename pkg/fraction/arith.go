// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"math/big"
)

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	a, b := f.parts()
	p, q := g.parts()
	n := new(big.Int).Mul(a, q)
	n.Add(n, new(big.Int).Mul(b, p))
	return reduce(n, new(big.Int).Mul(b, q))
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	a, b := f.parts()
	p, q := g.parts()
	n := new(big.Int).Mul(a, q)
	n.Sub(n, new(big.Int).Mul(b, p))
	return reduce(n, new(big.Int).Mul(b, q))
}

// Mul returns f × g.
func (f Fraction) Mul(g Fraction) Fraction {
	a, b := f.parts()
	p, q := g.parts()
	return reduce(new(big.Int).Mul(a, p), new(big.Int).Mul(b, q))
}

// Quo returns f ÷ g, or DivisionByZero if g is zero.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, zeroDivisor()
	}
	a, b := f.parts()
	p, q := g.parts()
	return reduce(new(big.Int).Mul(a, q), new(big.Int).Mul(b, p)), nil
}

// AddInt returns f + k.
func (f Fraction) AddInt(k int64) Fraction { return f.Add(FromInt(k)) }

// SubInt returns f - k.
func (f Fraction) SubInt(k int64) Fraction { return f.Sub(FromInt(k)) }

// MulInt returns f × k.
func (f Fraction) MulInt(k int64) Fraction { return f.Mul(FromInt(k)) }

// QuoInt returns f ÷ k, or DivisionByZero if k is zero.
func (f Fraction) QuoInt(k int64) (Fraction, error) { return f.Quo(FromInt(k)) }

// AddFloat returns f + x. Mixing a fraction with a float always yields a
// float.
func (f Fraction) AddFloat(x float64) float64 { return f.Float64() + x }

// SubFloat returns f - x as a float.
func (f Fraction) SubFloat(x float64) float64 { return f.Float64() - x }

// MulFloat returns f × x as a float.
func (f Fraction) MulFloat(x float64) float64 { return f.Float64() * x }

// QuoFloat returns f ÷ x as a float, or DivisionByZero if x is zero.
func (f Fraction) QuoFloat(x float64) (float64, error) {
	if x == 0 {
		return 0, zeroDivisor()
	}
	return f.Float64() / x, nil
}

// IntSub returns k - f.
func IntSub(k int64, f Fraction) Fraction { return FromInt(k).Sub(f) }

// IntQuo returns k ÷ f, or DivisionByZero if f is zero.
func IntQuo(k int64, f Fraction) (Fraction, error) { return FromInt(k).Quo(f) }

// FloatSub returns x - f as a float.
func FloatSub(x float64, f Fraction) float64 { return x - f.Float64() }

// FloatQuo returns x ÷ f as a float, or DivisionByZero if f is zero.
func FloatQuo(x float64, f Fraction) (float64, error) {
	if f.IsZero() {
		return 0, zeroDivisor()
	}
	return x / f.Float64(), nil
}

// Op is an arithmetic operation.
type Op int

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpQuo
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpQuo:
		return "/"
	default:
		return "?"
	}
}

// Apply returns x op y. One of the operands must be a Fraction and the other
// may be an integer, a float64, or a Fraction, in either position. The result
// is a Fraction unless one of the operands is a float, in which case it is a
// float64.
//
// Apply returns NotSupported if the operand types are not supported and
// DivisionByZero if the operation divides by zero.
func Apply(op Op, x, y interface{}) (interface{}, error) {
	a, b := operandOf(x), operandOf(y)
	if a.kind == KindUnsupported || b.kind == KindUnsupported {
		return nil, unsupportedOperands(op, x, y)
	}
	if a.kind != KindFraction && b.kind != KindFraction {
		return nil, unsupportedOperands(op, x, y)
	}

	// Mixing with a float widens to float
	if a.kind == KindFloat || b.kind == KindFloat {
		return applyFloat(op, x, y, a.float(), b.float())
	}

	// Both operands are integers or fractions, neither of which fails to
	// resolve
	f, _ := a.fraction()
	g, _ := b.fraction()
	switch op {
	case OpAdd:
		return f.Add(g), nil
	case OpSub:
		return f.Sub(g), nil
	case OpMul:
		return f.Mul(g), nil
	case OpQuo:
		v, err := f.Quo(g)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, unsupportedOperands(op, x, y)
	}
}

func applyFloat(op Op, x, y interface{}, a, b float64) (interface{}, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpQuo:
		if b == 0 {
			return nil, zeroDivisor()
		}
		return a / b, nil
	default:
		return nil, unsupportedOperands(op, x, y)
	}
}

// Add returns x + y. See [Apply].
func Add(x, y interface{}) (interface{}, error) { return Apply(OpAdd, x, y) }

// Sub returns x - y. See [Apply].
func Sub(x, y interface{}) (interface{}, error) { return Apply(OpSub, x, y) }

// Mul returns x × y. See [Apply].
func Mul(x, y interface{}) (interface{}, error) { return Apply(OpMul, x, y) }

// Quo returns x ÷ y. See [Apply].
func Quo(x, y interface{}) (interface{}, error) { return Apply(OpQuo, x, y) }
