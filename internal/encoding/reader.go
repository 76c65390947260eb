// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Reader reads length-prefixed values from a stream. Reader never reads past
// the end of the last value it decodes. Once a read fails, every subsequent
// read returns the same error.
type Reader struct {
	r   io.ByteReader
	err error
}

type byteReader struct{ io.Reader }

func (r byteReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r.Reader, b[:])
	return b[0], err
}

func NewReader(r io.Reader) *Reader {
	if br, ok := r.(io.ByteReader); ok {
		return &Reader{r: br}
	}
	return &Reader{r: byteReader{r}}
}

// Err returns the first error encountered by the reader, if any.
func (r *Reader) Err() error { return r.err }

func (r *Reader) didFail(field string, err error) bool {
	if r.err != nil {
		return true
	}
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrNotEnoughData
	}
	r.err = Error{fmt.Errorf("%s: %w", field, err)}
	return true
}

func (r *Reader) ReadUvarint(field string) uint64 {
	if r.err != nil {
		return 0
	}
	v, err := binary.ReadUvarint(r.r)
	if r.didFail(field, err) {
		return 0
	}
	return v
}

func (r *Reader) ReadBool(field string) bool {
	if r.err != nil {
		return false
	}
	b, err := r.r.ReadByte()
	if r.didFail(field, err) {
		return false
	}
	v, err := parseBool(b)
	if r.didFail(field, err) {
		return false
	}
	return v
}

func (r *Reader) ReadBytes(field string) []byte {
	l := r.ReadUvarint(field)
	if r.err != nil {
		return nil
	}
	if l > MaxValueSize {
		r.didFail(field, ErrTooLarge)
		return nil
	}

	b := make([]byte, l)
	for i := range b {
		c, err := r.r.ReadByte()
		if r.didFail(field, err) {
			return nil
		}
		b[i] = c
	}
	return b
}

// ReadBigInt reads a non-negative big integer.
func (r *Reader) ReadBigInt(field string) *big.Int {
	b := r.ReadBytes(field)
	if r.err != nil {
		return nil
	}
	return new(big.Int).SetBytes(b)
}
