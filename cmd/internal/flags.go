// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package internal

import (
	"github.com/spf13/pflag"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
)

// FractionFlag is a flag value that must parse as a fraction.
type FractionFlag struct {
	Value *fraction.Fraction
}

var _ pflag.Value = FractionFlag{}

func (f FractionFlag) Type() string { return "fraction" }

func (f FractionFlag) String() string {
	if f.Value == nil {
		return ""
	}
	return f.Value.Canonical()
}

func (f FractionFlag) Set(s string) error {
	v, err := fraction.Parse(s)
	if err != nil {
		return err
	}
	*f.Value = v
	return nil
}
