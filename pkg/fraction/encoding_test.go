// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Value Fraction `json:"value" yaml:"value"`
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(holder{MustNew(2, -4)})
	require.NoError(t, err)
	require.Equal(t, `{"value":"-1/2"}`, string(b))

	b, err = json.Marshal(holder{FromInt(3)})
	require.NoError(t, err)
	require.Equal(t, `{"value":"3/1"}`, string(b))

	cases := []struct {
		json   string
		expect interface{}
	}{
		{`{"value":"2/4"}`, "1/2"},
		{`{"value":" 5 "}`, "5/1"},
		{`{"value":-12}`, "-12/1"},
		{`{"value":123456789012345678901234567890}`, "123456789012345678901234567890/1"},
		{`{"value":null}`, "0/1"},
		{`{"value":1.5}`, errors.BadFormat},
		{`{"value":"1/0"}`, errors.DivisionByZero},
		{`{"value":"x"}`, errors.BadFormat},
		{`{"value":true}`, errors.EncodingError},
	}

	for _, c := range cases {
		t.Run(c.json, func(t *testing.T) {
			var v holder
			err := json.Unmarshal([]byte(c.json), &v)
			if status, ok := c.expect.(errors.Status); ok {
				require.Error(t, err)
				require.Equal(t, status, errors.Code(err))
			} else {
				require.NoError(t, err)
				requireFrac(t, c.expect.(string), v.Value)
			}
		})
	}
}

func TestText(t *testing.T) {
	b, err := MustNew(6, 9).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "2/3", string(b))

	var f Fraction
	require.NoError(t, f.UnmarshalText([]byte("10/4")))
	requireFrac(t, "5/2", f)
	require.ErrorIs(t, f.UnmarshalText([]byte("1/2/3")), errors.BadFormat)
	requireFrac(t, "5/2", f)
}

func TestYAML(t *testing.T) {
	b, err := yaml.Marshal(holder{MustNew(3, 9)})
	require.NoError(t, err)
	require.Equal(t, "value: 1/3\n", string(b))

	var v holder
	require.NoError(t, yaml.Unmarshal([]byte("value: 4/6\n"), &v))
	requireFrac(t, "2/3", v.Value)
}

func TestBinary(t *testing.T) {
	cases := []struct {
		f      Fraction
		expect []byte
	}{
		{MustNew(-3, 4), []byte{1, 1, 3, 1, 4}},
		{MustNew(1, 2), []byte{0, 1, 1, 1, 2}},
		{Fraction{}, []byte{0, 0, 1, 1}},
		{FromInt(256), []byte{0, 2, 1, 0, 1, 1}},
	}

	for _, c := range cases {
		t.Run(c.f.Canonical(), func(t *testing.T) {
			b, err := c.f.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, c.expect, b)

			var g Fraction
			require.NoError(t, g.UnmarshalBinary(b))
			require.True(t, c.f.Equal(g))
		})
	}
}

func TestBinaryDecode(t *testing.T) {
	var f Fraction
	require.NoError(t, f.UnmarshalBinary([]byte{1, 1, 2, 1, 4}))
	requireFrac(t, "-1/2", f)

	err := f.UnmarshalBinary([]byte{0, 1, 1, 0})
	require.ErrorIs(t, err, errors.DivisionByZero)

	err = f.UnmarshalBinary([]byte{0, 1})
	require.Equal(t, errors.EncodingError, errors.Code(err))

	err = f.UnmarshalBinary([]byte{2, 1, 1, 1, 1})
	require.Equal(t, errors.EncodingError, errors.Code(err))

	err = f.UnmarshalBinary([]byte{0, 0, 1, 1, 9})
	require.Equal(t, errors.EncodingError, errors.Code(err))

	// Failed decodes do not modify the value
	requireFrac(t, "-1/2", f)
}

func TestBinaryStream(t *testing.T) {
	buf := new(bytes.Buffer)
	for _, s := range []string{"1/2", "-5/3", "0/1"} {
		require.NoError(t, MustParse(s).MarshalBinaryTo(buf))
	}

	var got []string
	for buf.Len() > 0 {
		var f Fraction
		require.NoError(t, f.UnmarshalBinaryFrom(buf))
		got = append(got, f.Canonical())
	}
	require.Equal(t, []string{"1/2", "-5/3", "0/1"}, got)
}
