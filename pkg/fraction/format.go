// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse parses a fraction of the form "n/d" or "n", where n and d are base 10
// integers that may be signed. Surrounding whitespace is ignored. The result
// is reduced.
//
// Parse returns BadFormat if s is malformed and DivisionByZero if the
// denominator is zero.
func Parse(s string) (Fraction, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Fraction{}, badFormat(s)
	}

	if !strings.Contains(t, "/") {
		n, ok := parseInt(t)
		if !ok {
			return Fraction{}, badFormat(s)
		}
		return reduce(n, big.NewInt(1)), nil
	}

	parts := strings.Split(t, "/")
	if len(parts) != 2 {
		return Fraction{}, badFormat(s)
	}
	n, ok := parseInt(parts[0])
	if !ok {
		return Fraction{}, badFormat(s)
	}
	d, ok := parseInt(parts[1])
	if !ok {
		return Fraction{}, badFormat(s)
	}
	return normalize(n, d)
}

// MustParse calls Parse and panics if it returns an error.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseValue parses text, which may be a string, a byte slice, or a
// [fmt.Stringer]. ParseValue returns InvalidArgument if v is not text.
func ParseValue(v interface{}) (Fraction, error) {
	switch v := v.(type) {
	case string:
		return Parse(v)
	case []byte:
		return Parse(string(v))
	case fmt.Stringer:
		return Parse(v.String())
	default:
		return Fraction{}, notText(v)
	}
}

func parseInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	// Underscores may separate digits, one at a time
	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] != '_' {
				continue
			}
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return nil, false
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return new(big.Int).SetString(s, 10)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// String returns the numerator if f is an integer, otherwise "n/d".
func (f Fraction) String() string {
	n, d := f.parts()
	if n.Sign() == 0 || d.Cmp(bigOne) == 0 {
		return n.String()
	}
	return n.String() + "/" + d.String()
}

// Canonical returns "n/d", including when f is an integer. Zero is "0/1".
// Canonical is the inverse of [Parse].
func (f Fraction) Canonical() string {
	n, d := f.parts()
	return n.String() + "/" + d.String()
}

// Format implements [fmt.Formatter]. %v and %s format the value with
// [Fraction.String], %+v with [Fraction.Canonical], %q quotes the result, and
// the floating point verbs format the value of [Fraction.Float64].
func (f Fraction) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'q':
		str := f.String()
		if s.Flag('+') {
			str = f.Canonical()
		}
		if verb == 'v' {
			verb = 's'
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), str)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Float64())
	case 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Int())
	default:
		fmt.Fprintf(s, "%%!%c(fraction.Fraction=%s)", verb, f.Canonical())
	}
}
