// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import "errors"

var ErrNotEnoughData = errors.New("not enough data")
var ErrOverflow = errors.New("overflow")
var ErrTooLarge = errors.New("value exceeds maximum size")

// Error marks an error as having occurred while encoding or decoding.
type Error struct {
	E error
}

func (e Error) Error() string { return e.E.Error() }
func (e Error) Unwrap() error { return e.E }
