// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strconv"

	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
)

var binaryOps = map[token.Token]fraction.Op{
	token.ADD: fraction.OpAdd,
	token.SUB: fraction.OpSub,
	token.MUL: fraction.OpMul,
	token.QUO: fraction.OpQuo,
}

// evaluate evaluates an arithmetic expression using Go expression syntax.
// Integer literals are fractions and float literals are floats, so 1/3 is a
// fraction and 1.0/3 is a float. The result is a fraction.Fraction or a
// float64.
func evaluate(expr string) (interface{}, error) {
	x, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, errors.BadFormat.WithFormat("parse %q: %w", expr, err)
	}
	return eval(x)
}

func eval(x ast.Expr) (interface{}, error) {
	switch x := x.(type) {
	case *ast.ParenExpr:
		return eval(x.X)

	case *ast.BasicLit:
		return evalLiteral(x)

	case *ast.UnaryExpr:
		v, err := eval(x.X)
		if err != nil {
			return nil, err
		}
		switch x.Op {
		case token.ADD:
			return v, nil
		case token.SUB:
			switch v := v.(type) {
			case fraction.Fraction:
				return v.Neg(), nil
			case float64:
				return -v, nil
			}
		}
		return nil, errors.BadFormat.WithFormat("unsupported operator %v", x.Op)

	case *ast.BinaryExpr:
		op, ok := binaryOps[x.Op]
		if !ok {
			return nil, errors.BadFormat.WithFormat("unsupported operator %v", x.Op)
		}
		a, err := eval(x.X)
		if err != nil {
			return nil, err
		}
		b, err := eval(x.Y)
		if err != nil {
			return nil, err
		}
		return apply(op, a, b)

	default:
		return nil, errors.BadFormat.WithFormat("unsupported expression %T", x)
	}
}

func evalLiteral(x *ast.BasicLit) (interface{}, error) {
	switch x.Kind {
	case token.INT:
		v, ok := new(big.Int).SetString(x.Value, 0)
		if !ok {
			return nil, errors.BadFormat.WithFormat("invalid integer %s", x.Value)
		}
		return fraction.MustNew(v, 1), nil

	case token.FLOAT:
		v, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return nil, errors.BadFormat.WithFormat("invalid float %s: %w", x.Value, err)
		}
		return v, nil

	default:
		return nil, errors.BadFormat.WithFormat("unsupported literal %s", x.Value)
	}
}

// apply applies the operation. Operations between two floats are not
// supported by the fraction package so they are done here.
func apply(op fraction.Op, a, b interface{}) (interface{}, error) {
	x, ok1 := a.(float64)
	y, ok2 := b.(float64)
	if !ok1 || !ok2 {
		return fraction.Apply(op, a, b)
	}

	switch op {
	case fraction.OpAdd:
		return x + y, nil
	case fraction.OpSub:
		return x - y, nil
	case fraction.OpMul:
		return x * y, nil
	case fraction.OpQuo:
		if y == 0 {
			return nil, errors.DivisionByZero.With("cannot divide by zero")
		}
		return x / y, nil
	}
	return nil, errors.NotSupported.WithFormat("%v is not supported", op)
}
