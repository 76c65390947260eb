// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigintBinary(t *testing.T) {
	cases := []string{"0", "1", "255", "256", "1000000000000000000000000000001"}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			v, ok := new(big.Int).SetString(c, 10)
			require.True(t, ok)

			b := AppendBigInt([]byte{0xFF}, v)
			require.Equal(t, byte(0xFF), b[0])

			u, n, err := DecodeBigInt(b[1:])
			require.NoError(t, err)
			assert.Equal(t, len(b)-1, n)
			require.Zero(t, v.Cmp(u), "expected %v, got %v", v, u)
		})
	}
}

func TestDecodeBytes(t *testing.T) {
	_, _, err := DecodeBytes(nil)
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, _, err = DecodeBytes([]byte{3, 1, 2})
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, _, err = DecodeBytes(AppendUvarint(nil, MaxValueSize+1))
	require.ErrorIs(t, err, ErrTooLarge)

	v, n, err := DecodeBytes([]byte{2, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, v)
	require.Equal(t, 3, n)
}

func TestDecodeUvarint(t *testing.T) {
	v, n, err := DecodeUvarint(AppendUvarint(nil, 300))
	require.NoError(t, err)
	require.Equal(t, uint64(300), v)
	require.Equal(t, 2, n)

	_, _, err = DecodeUvarint([]byte{0x80})
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, _, err = DecodeUvarint(bytes.Repeat([]byte{0xFF}, 11))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeBool(t *testing.T) {
	v, n, err := DecodeBool([]byte{1, 0})
	require.NoError(t, err)
	require.True(t, v)
	require.Equal(t, 1, n)

	_, _, err = DecodeBool([]byte{2})
	require.Error(t, err)

	_, _, err = DecodeBool(nil)
	require.ErrorIs(t, err, ErrNotEnoughData)
}

func TestReaderWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.WriteBool("flag", true)
	w.WriteUvarint("count", 300)
	w.WriteBigInt("value", big.NewInt(65537))
	w.WriteBytes("data", []byte("foo"))
	n, err := w.Done()
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)

	// Trailing data must not be consumed
	buf.WriteString("rest")

	r := NewReader(buf)
	assert.True(t, r.ReadBool("flag"))
	assert.Equal(t, uint64(300), r.ReadUvarint("count"))
	assert.Equal(t, int64(65537), r.ReadBigInt("value").Int64())
	assert.Equal(t, []byte("foo"), r.ReadBytes("data"))
	require.NoError(t, r.Err())
	require.Equal(t, "rest", buf.String())
}

func TestReaderShort(t *testing.T) {
	r := NewReader(strings.NewReader("\x05ab"))
	require.Nil(t, r.ReadBytes("data"))

	var encErr Error
	require.ErrorAs(t, r.Err(), &encErr)
	require.ErrorIs(t, r.Err(), ErrNotEnoughData)

	// The error latches
	require.False(t, r.ReadBool("flag"))
	require.Equal(t, encErr, r.Err())
}

func TestReaderTooLarge(t *testing.T) {
	b := AppendUvarint(nil, MaxValueSize+1)
	r := NewReader(bytes.NewReader(b))
	require.Nil(t, r.ReadBytes("data"))
	require.ErrorIs(t, r.Err(), ErrTooLarge)
}
