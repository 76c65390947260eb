// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"gitlab.com/accumulatenetwork/fraction/internal/encoding"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
)

// MarshalText marshals the fraction in canonical form.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.Canonical()), nil
}

// UnmarshalText parses the fraction with [Parse].
func (f *Fraction) UnmarshalText(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalJSON marshals the fraction to JSON as a string in canonical form.
func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Canonical())
}

// UnmarshalJSON unmarshals the fraction from a JSON string, which is parsed
// with [Parse], or a JSON integer.
func (f *Fraction) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return errors.EncodingError.Wrap(err)
		}
		return f.UnmarshalText([]byte(s))
	}

	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}
	i, ok := new(big.Int).SetString(n.String(), 10)
	if !ok {
		return errors.BadFormat.WithFormat("%s is not an integer", n)
	}
	*f = reduce(i, big.NewInt(1))
	return nil
}

// MarshalBinary marshals the fraction as the sign of the numerator followed by
// the magnitudes of the numerator and denominator.
func (f Fraction) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	err := f.MarshalBinaryTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalBinaryTo writes the binary form of the fraction to wr.
func (f Fraction) MarshalBinaryTo(wr io.Writer) error {
	n, d := f.parts()
	w := encoding.NewWriter(wr)
	w.WriteBool("Negative", n.Sign() < 0)
	w.WriteBigInt("Numerator", n)
	w.WriteBigInt("Denominator", d)
	_, err := w.Done()
	return errors.EncodingError.Wrap(err)
}

// UnmarshalBinary unmarshals the fraction. The value is reduced, so encodings
// of equal fractions unmarshal to the same value. UnmarshalBinary returns
// DivisionByZero if the denominator is zero.
func (f *Fraction) UnmarshalBinary(data []byte) error {
	neg, n, err := encoding.DecodeBool(data)
	if err != nil {
		return decodeError("Negative", err)
	}
	data = data[n:]

	num, n, err := encoding.DecodeBigInt(data)
	if err != nil {
		return decodeError("Numerator", err)
	}
	data = data[n:]

	den, n, err := encoding.DecodeBigInt(data)
	if err != nil {
		return decodeError("Denominator", err)
	}
	if len(data) > n {
		return errors.EncodingError.WithFormat("%d bytes of trailing data", len(data)-n)
	}

	return f.set(neg, num, den)
}

func decodeError(field string, err error) error {
	return errors.EncodingError.Wrap(encoding.Error{E: fmt.Errorf("%s: %w", field, err)})
}

// UnmarshalBinaryFrom reads a fraction from rd. It does not read past the
// end of the fraction.
func (f *Fraction) UnmarshalBinaryFrom(rd io.Reader) error {
	r := encoding.NewReader(rd)
	neg := r.ReadBool("Negative")
	n := r.ReadBigInt("Numerator")
	d := r.ReadBigInt("Denominator")
	if r.Err() != nil {
		return errors.EncodingError.Wrap(r.Err())
	}

	return f.set(neg, n, d)
}

func (f *Fraction) set(neg bool, n, d *big.Int) error {
	if neg {
		n.Neg(n)
	}
	v, err := normalize(n, d)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
