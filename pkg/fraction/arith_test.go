// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

func TestFractionArithmetic(t *testing.T) {
	half, third := MustNew(1, 2), MustNew(1, 3)

	requireFrac(t, "5/6", half.Add(third))
	requireFrac(t, "-1/6", third.Add(MustNew(-1, 2)))
	requireFrac(t, "1/6", half.Sub(third))
	requireFrac(t, "1/6", half.Mul(third))

	q, err := half.Quo(third)
	require.NoError(t, err)
	requireFrac(t, "3/2", q)

	requireFrac(t, "0/1", half.Sub(MustNew(2, 4)))
}

func TestIntArithmetic(t *testing.T) {
	f := MustNew(3, 4)

	requireFrac(t, "7/4", f.AddInt(1))
	requireFrac(t, "-5/4", f.SubInt(2))
	requireFrac(t, "3/1", f.MulInt(4))

	q, err := f.QuoInt(-3)
	require.NoError(t, err)
	requireFrac(t, "-1/4", q)

	requireFrac(t, "1/4", IntSub(1, f))

	q, err = IntQuo(3, f)
	require.NoError(t, err)
	requireFrac(t, "4/1", q)
}

func TestChained(t *testing.T) {
	f := MustNew(1, 2).MulInt(2).Sub(MustNew(1, 4))
	require.True(t, f.Equal(MustNew(3, 4)))
}

func TestFloatWidening(t *testing.T) {
	half := MustNew(1, 2)

	assert.Equal(t, 1.0, half.AddFloat(0.5))
	assert.Equal(t, 0.25, half.SubFloat(0.25))
	assert.Equal(t, 0.75, half.MulFloat(1.5))
	assert.Equal(t, -0.25, FloatSub(0.25, half))

	x, err := half.QuoFloat(0.25)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x)

	x, err = FloatQuo(1.5, half)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)

	v, err := Add(half, 0.5)
	require.NoError(t, err)
	require.IsType(t, float64(0), v)
	require.Equal(t, 1.0, v)

	v, err = Add(0.5, half)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDivisionByZero(t *testing.T) {
	half := MustNew(1, 2)

	_, err := half.QuoInt(0)
	require.ErrorIs(t, err, errors.DivisionByZero)
	_, err = half.QuoFloat(0)
	require.ErrorIs(t, err, errors.DivisionByZero)
	_, err = half.Quo(MustNew(0, 1))
	require.ErrorIs(t, err, errors.DivisionByZero)
	_, err = IntQuo(1, Fraction{})
	require.ErrorIs(t, err, errors.DivisionByZero)
	_, err = FloatQuo(1, Fraction{})
	require.ErrorIs(t, err, errors.DivisionByZero)

	for _, y := range []interface{}{0, 0.0, Fraction{}, big.NewInt(0)} {
		_, err = Quo(half, y)
		require.ErrorIs(t, err, errors.DivisionByZero, "%v / %T(%v)", half, y, y)
	}
	for _, x := range []interface{}{1, 1.0, half} {
		_, err = Quo(x, Fraction{})
		require.ErrorIs(t, err, errors.DivisionByZero, "%T(%v) / 0", x, x)
	}
}

func TestApply(t *testing.T) {
	f := MustNew(1, 4)

	cases := []struct {
		op     Op
		x, y   interface{}
		expect interface{}
	}{
		{OpAdd, f, 1, "5/4"},
		{OpAdd, 1, f, "5/4"},
		{OpSub, f, 1, "-3/4"},
		{OpSub, 1, f, "3/4"},
		{OpMul, f, uint16(2), "1/2"},
		{OpMul, 2, f, "1/2"},
		{OpQuo, f, 2, "1/8"},
		{OpQuo, 1, f, "4/1"},
		{OpQuo, f, MustNew(1, 2), "1/2"},
		{OpSub, f, MustNew(1, 2), "-1/4"},
		{OpAdd, f, big.NewInt(3), "13/4"},
		{OpAdd, f, 0.75, 1.0},
		{OpSub, f, 0.5, -0.25},
		{OpSub, 0.5, f, 0.25},
		{OpMul, 2.0, f, 0.5},
		{OpQuo, f, 0.5, 0.5},
		{OpQuo, 1.0, f, 4.0},
	}

	for _, c := range cases {
		t.Run(c.op.String(), func(t *testing.T) {
			v, err := Apply(c.op, c.x, c.y)
			require.NoError(t, err)
			switch expect := c.expect.(type) {
			case string:
				require.IsType(t, Fraction{}, v)
				requireFrac(t, expect, v.(Fraction))
			default:
				require.Equal(t, expect, v)
			}
		})
	}
}

func TestApplyNotSupported(t *testing.T) {
	f := MustNew(1, 4)

	cases := []struct {
		x, y interface{}
	}{
		{f, "1"},
		{"1", f},
		{f, nil},
		{f, float32(1)},
		{f, true},
		{1, 2},
		{1.0, 2},
	}

	for _, c := range cases {
		t.Run("", func(t *testing.T) {
			_, err := Apply(OpAdd, c.x, c.y)
			require.ErrorIs(t, err, errors.NotSupported)
			require.Contains(t, err.Error(), "not supported for these operand types")
		})
	}
}
