// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"encoding/hex"
	"encoding/json"
)

// Hex is a byte slice that is logged as a hex string.
type Hex []byte

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

// AsHex copies b as Hex.
func AsHex(b []byte) Hex {
	u := make(Hex, len(b))
	copy(u, b)
	return u
}
