// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

func Fatalf(format string, args ...interface{}) {
	Errorf(os.Stderr, format, args...)
	os.Exit(1)
}

func Check(err error) {
	if err != nil {
		Fatalf("%v", err)
	}
}

// Errorf writes an error message to w, in red if w is a terminal.
func Errorf(w io.Writer, format string, args ...interface{}) {
	printf(w, color.New(color.FgRed), "Error: "+format+"\n", args...)
}

// Warnf writes a warning to w, in yellow if w is a terminal.
func Warnf(w io.Writer, format string, args ...interface{}) {
	printf(w, color.New(color.FgYellow), "WARNING: "+format+"\n", args...)
}

func printf(w io.Writer, c *color.Color, format string, args ...interface{}) {
	if isTerminal(w) {
		_, _ = c.Fprintf(w, format, args...)
	} else {
		_, _ = fmt.Fprintf(w, format, args...)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
