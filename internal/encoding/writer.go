// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"fmt"
	"io"
	"math/big"
)

// Writer writes length-prefixed values to a stream. Once a write fails, every
// subsequent write is a no-op and [Writer.Done] returns the error.
type Writer struct {
	w   io.Writer
	buf []byte
	n   int
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(field string, encode func([]byte) []byte) {
	if w.err != nil {
		return
	}
	w.buf = encode(w.buf[:0])
	n, err := w.w.Write(w.buf)
	w.n += n
	if err != nil {
		w.err = Error{fmt.Errorf("%s: %w", field, err)}
	}
}

func (w *Writer) WriteUvarint(field string, v uint64) {
	w.write(field, func(b []byte) []byte { return AppendUvarint(b, v) })
}

func (w *Writer) WriteBool(field string, v bool) {
	w.write(field, func(b []byte) []byte { return AppendBool(b, v) })
}

func (w *Writer) WriteBytes(field string, v []byte) {
	w.write(field, func(b []byte) []byte { return AppendBytes(b, v) })
}

// WriteBigInt writes the magnitude of v.
func (w *Writer) WriteBigInt(field string, v *big.Int) {
	w.write(field, func(b []byte) []byte { return AppendBigInt(b, v) })
}

// Done returns the number of bytes written and the first error encountered.
func (w *Writer) Done() (int, error) {
	return w.n, w.err
}
