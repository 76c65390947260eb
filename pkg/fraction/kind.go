// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"math/big"
	"reflect"

	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

// Kind is the kind of an operand.
type Kind int

const (
	// KindUnsupported is any type that is not an integer, a float64, or a
	// Fraction.
	KindUnsupported Kind = iota
	// KindInteger is any signed or unsigned Go integer type, or *big.Int.
	KindInteger
	// KindFloat is float64. Other float types are not supported.
	KindFloat
	// KindFraction is Fraction or *Fraction.
	KindFraction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindFraction:
		return "fraction"
	default:
		return "unsupported"
	}
}

// KindOf returns the kind of v.
func KindOf(v interface{}) Kind {
	return operandOf(v).kind
}

// operand is a value resolved by kind.
type operand struct {
	kind Kind
	i    *big.Int
	x    float64
	f    Fraction
}

func operandOf(v interface{}) operand {
	switch v := v.(type) {
	case nil:
		return operand{}
	case Fraction:
		return operand{kind: KindFraction, f: v}
	case *Fraction:
		if v == nil {
			return operand{}
		}
		return operand{kind: KindFraction, f: *v}
	case *big.Int:
		if v == nil {
			return operand{}
		}
		return operand{kind: KindInteger, i: new(big.Int).Set(v)}
	case int:
		return operand{kind: KindInteger, i: big.NewInt(int64(v))}
	case int64:
		return operand{kind: KindInteger, i: big.NewInt(v)}
	case float64:
		return operand{kind: KindFloat, x: v}
	}

	// Named types and the remaining integer widths
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return operand{kind: KindInteger, i: big.NewInt(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return operand{kind: KindInteger, i: new(big.Int).SetUint64(rv.Uint())}
	case reflect.Float64:
		return operand{kind: KindFloat, x: rv.Float()}
	}
	return operand{}
}

// fraction returns the operand as a fraction. Floats are converted with the
// default precision.
func (o operand) fraction() (Fraction, error) {
	switch o.kind {
	case KindFraction:
		return o.f, nil
	case KindInteger:
		return Fraction{num: o.i}, nil
	case KindFloat:
		return FromFloat(o.x, DefaultPrecision)
	default:
		return Fraction{}, errors.InvalidArgument.WithFormat("%v operand cannot be used as a fraction", o.kind)
	}
}

// float returns the operand as a float64.
func (o operand) float() float64 {
	switch o.kind {
	case KindFraction:
		return o.f.Float64()
	case KindInteger:
		x, _ := new(big.Float).SetInt(o.i).Float64()
		return x
	default:
		return o.x
	}
}

func resolve(v interface{}) (Fraction, error) {
	return operandOf(v).fraction()
}
