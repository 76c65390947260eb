// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gopkg.in/yaml.v3"
)

// print writes v as JSON or YAML, or calls text for text output.
func (a *app) print(cmd *cobra.Command, v interface{}, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch a.config.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(v)
		if err != nil {
			return errors.InternalError.WithFormat("encode json: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return errors.InternalError.WithFormat("encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return text(w)
	}
}

// printTable writes tab-separated rows as aligned columns.
func printTable(w io.Writer, header string, rows []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = io.WriteString(tw, header+"\n")
	for _, row := range rows {
		_, _ = io.WriteString(tw, row+"\n")
	}
	return tw.Flush()
}

// formatFloat formats x so that it cannot be mistaken for an integer.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if math.IsInf(x, 0) || math.IsNaN(x) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
