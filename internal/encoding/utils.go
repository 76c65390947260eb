// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// MaxValueSize is the largest byte string that will be decoded.
const MaxValueSize = 1 << 20

// AppendUvarint appends v as an unsigned varint.
func AppendUvarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// AppendBool appends v as a single byte, 0 or 1.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// AppendBytes appends the length of v followed by v.
func AppendBytes(dst, v []byte) []byte {
	dst = AppendUvarint(dst, uint64(len(v)))
	return append(dst, v...)
}

// AppendBigInt appends the magnitude of v as length-prefixed big-endian
// bytes. The sign is not encoded; zero is encoded as an empty byte string.
func AppendBigInt(dst []byte, v *big.Int) []byte {
	return AppendBytes(dst, v.Bytes())
}

// DecodeUvarint decodes an unsigned varint and returns the number of bytes
// consumed.
func DecodeUvarint(b []byte) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	switch {
	case n == 0:
		return 0, 0, ErrNotEnoughData
	case n < 0:
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

// DecodeBool decodes a boolean and returns the number of bytes consumed.
func DecodeBool(b []byte) (bool, int, error) {
	if len(b) == 0 {
		return false, 0, ErrNotEnoughData
	}
	v, err := parseBool(b[0])
	if err != nil {
		return false, 0, err
	}
	return v, 1, nil
}

func parseBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%d is not a valid boolean", b)
}

// DecodeBytes decodes a length-prefixed byte string and returns the number of
// bytes consumed. The result aliases b.
func DecodeBytes(b []byte) ([]byte, int, error) {
	l, n, err := DecodeUvarint(b)
	if err != nil {
		return nil, 0, fmt.Errorf("length: %w", err)
	}
	if l > MaxValueSize {
		return nil, 0, ErrTooLarge
	}
	if uint64(len(b)-n) < l {
		return nil, 0, ErrNotEnoughData
	}
	end := n + int(l)
	return b[n:end], end, nil
}

// DecodeBigInt decodes a non-negative big integer and returns the number of
// bytes consumed.
func DecodeBigInt(b []byte) (*big.Int, int, error) {
	v, n, err := DecodeBytes(b)
	if err != nil {
		return nil, 0, err
	}
	return new(big.Int).SetBytes(v), n, nil
}
