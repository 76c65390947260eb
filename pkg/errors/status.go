// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OK means the operation succeeded.
const OK Status = 200

// BadRequest means the request was malformed or invalid.
const BadRequest Status = 400

// InvalidArgument means an argument had an unsupported type or value.
const InvalidArgument Status = 401

// DivisionByZero means an operation would divide by zero.
const DivisionByZero Status = 402

// BadFormat means textual input could not be parsed.
const BadFormat Status = 403

// OutOfRange means an argument was outside its permitted range.
const OutOfRange Status = 404

// NotSupported means the operation is not supported for the operand types.
const NotSupported Status = 405

// NotComparable means the operands cannot be compared.
const NotComparable Status = 406

// InternalError means an internal error occurred.
const InternalError Status = 500

// UnknownError means an unknown error occurred.
const UnknownError Status = 501

// EncodingError means encoding or decoding a value failed.
const EncodingError Status = 502

var statusNames = map[Status]string{
	OK:              "ok",
	BadRequest:      "badRequest",
	InvalidArgument: "invalidArgument",
	DivisionByZero:  "divisionByZero",
	BadFormat:       "badFormat",
	OutOfRange:      "outOfRange",
	NotSupported:    "notSupported",
	NotComparable:   "notComparable",
	InternalError:   "internalError",
	UnknownError:    "unknownError",
	EncodingError:   "encodingError",
}

// GetEnumValue returns the value of the Status
func (v Status) GetEnumValue() uint64 { return uint64(v) }

// SetEnumValue sets the value. SetEnumValue returns false if the value is invalid.
func (v *Status) SetEnumValue(id uint64) bool {
	u := Status(id)
	if _, ok := statusNames[u]; !ok {
		return false
	}
	*v = u
	return true
}

// String returns the name of the Status.
func (v Status) String() string {
	if s, ok := statusNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Status:%d", v)
}

// StatusByName returns the named Status.
func StatusByName(name string) (Status, bool) {
	for v, s := range statusNames {
		if strings.EqualFold(s, name) {
			return v, true
		}
	}
	return 0, false
}

// MarshalJSON marshals the Status to JSON as a string.
func (v Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON unmarshals the Status from JSON as a string.
func (v *Status) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	var ok bool
	*v, ok = StatusByName(s)
	if !ok || strings.ContainsRune(v.String(), ':') {
		return fmt.Errorf("invalid Status %q", s)
	}
	return nil
}
