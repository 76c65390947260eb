// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/fraction/cmd/internal"
	"gitlab.com/accumulatenetwork/fraction/internal/logging"
	cmdutil "gitlab.com/accumulatenetwork/fraction/internal/util/cmd"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
)

type parseResult struct {
	Input     string  `json:"input" yaml:"input"`
	Display   string  `json:"display" yaml:"display"`
	Canonical string  `json:"canonical" yaml:"canonical"`
	Float     float64 `json:"float" yaml:"float"`
	Integer   string  `json:"integer" yaml:"integer"`
	Proper    bool    `json:"proper" yaml:"proper"`

	integer *big.Int
}

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <fraction>...",
		Short: "Parse fractions and show their forms",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	var results []*parseResult
	for _, arg := range args {
		f, err := fraction.Parse(arg)
		if err != nil {
			return err
		}
		i := f.Int()
		results = append(results, &parseResult{
			Input:     arg,
			Display:   f.String(),
			Canonical: f.Canonical(),
			Float:     f.Float64(),
			Integer:   i.String(),
			Proper:    f.IsProper(),
			integer:   i,
		})
	}

	return a.print(cmd, results, func(w io.Writer) error {
		var rows []string
		for _, r := range results {
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%v",
				r.Input, r.Display, r.Canonical, formatFloat(r.Float), humanize.BigComma(r.integer), r.Proper))
		}
		return printTable(w, "INPUT\tDISPLAY\tCANONICAL\tFLOAT\tINTEGER\tPROPER", rows)
	})
}

type fromFloatResult struct {
	Input     float64 `json:"input" yaml:"input"`
	Precision int     `json:"precision" yaml:"precision"`
	Fraction  string  `json:"fraction" yaml:"fraction"`
}

func (a *app) newFromFloatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-float <number>...",
		Short: "Convert decimal numbers to fractions",
		Long:  "Convert decimal numbers to fractions, rounding to --precision decimal places.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runFromFloat,
	}
}

func (a *app) runFromFloat(cmd *cobra.Command, args []string) error {
	var results []*fromFloatResult
	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.BadFormat.WithFormat("%q is not a number", arg)
		}
		f, err := fraction.FromFloat(x, a.config.Precision)
		if err != nil {
			return err
		}
		if f.Float64() != x {
			cmdutil.Warnf(cmd.ErrOrStderr(), "%v rounded to %v", arg, f)
		}
		results = append(results, &fromFloatResult{
			Input:     x,
			Precision: a.config.Precision,
			Fraction:  f.Canonical(),
		})
	}

	return a.print(cmd, results, func(w io.Writer) error {
		var rows []string
		for _, r := range results {
			rows = append(rows, fmt.Sprintf("%s\t%s", formatFloat(r.Input), r.Fraction))
		}
		return printTable(w, "INPUT\tFRACTION", rows)
	})
}

type evalResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Result     string `json:"result" yaml:"result"`
	Kind       string `json:"kind" yaml:"kind"`
}

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Long: "Evaluate an arithmetic expression of +, -, *, / and parentheses. " +
			"Integer literals are fractions and decimal literals are floats, " +
			"so 1/3 is exact and 1.0/3 is not.",
		Args: cobra.ExactArgs(1),
		RunE: a.runEval,
	}
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	v, err := evaluate(args[0])
	if err != nil {
		return err
	}

	r := &evalResult{Expression: args[0], Kind: fraction.KindOf(v).String()}
	switch v := v.(type) {
	case fraction.Fraction:
		r.Result = v.String()
	case float64:
		r.Result = formatFloat(v)
	default:
		return errors.InternalError.WithFormat("unexpected result type %T", v)
	}
	a.logger.DebugContext(cmd.Context(), "Evaluated", "expression", r.Expression, "result", r.Result, "kind", r.Kind)

	return a.print(cmd, r, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, r.Result)
		return err
	})
}

type cmpResult struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result int    `json:"result" yaml:"result"`
	Approx bool   `json:"approx,omitempty" yaml:"approx,omitempty"`
}

func (r *cmpResult) symbol() string {
	switch {
	case r.Approx:
		return color.CyanString("≈")
	case r.Result < 0:
		return color.YellowString("<")
	case r.Result > 0:
		return color.YellowString(">")
	default:
		return color.GreenString("=")
	}
}

func (a *app) newCmpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two numbers",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runCmp,
	}
	cmd.Flags().Var(internal.FractionFlag{Value: new(fraction.Fraction)}, "tolerance", "Report values within this fraction of each other as approximately equal")
	bindFlag(a.viper, "tolerance", cmd.Flags().Lookup("tolerance"))
	return cmd
}

func (a *app) runCmp(cmd *cobra.Command, args []string) error {
	x, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	y, err := parseNumber(args[1])
	if err != nil {
		return err
	}

	c, err := fraction.Compare(x, y)
	if err != nil {
		return err
	}

	r := &cmpResult{A: args[0], B: args[1], Result: c}
	if c != 0 && a.config.Tolerance != "" {
		tol, err := fraction.Parse(a.config.Tolerance)
		if err != nil {
			return errors.BadRequest.WithFormat("tolerance: %w", err)
		}
		r.Approx = withinTolerance(x, y, tol.Abs())
		a.logger.DebugContext(cmd.Context(), "Applied tolerance", "tolerance", tol, "approx", r.Approx)
	}

	return a.print(cmd, r, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s %s\n", r.A, r.symbol(), r.B)
		return err
	})
}

// parseNumber parses s as a fraction or, failing that, as a float.
func parseNumber(s string) (interface{}, error) {
	f, err := fraction.Parse(s)
	if err == nil {
		return f, nil
	}
	x, err2 := strconv.ParseFloat(s, 64)
	if err2 == nil {
		return x, nil
	}
	return nil, err
}

func withinTolerance(x, y interface{}, tol fraction.Fraction) bool {
	f, ok1 := x.(fraction.Fraction)
	g, ok2 := y.(fraction.Fraction)
	if ok1 && ok2 {
		return f.Sub(g).Abs().Cmp(tol) <= 0
	}
	return math.Abs(floatOf(x)-floatOf(y)) <= tol.Float64()
}

func floatOf(v interface{}) float64 {
	switch v := v.(type) {
	case fraction.Fraction:
		return v.Float64()
	case float64:
		return v
	}
	return math.NaN()
}

type codecResult struct {
	Fraction string `json:"fraction" yaml:"fraction"`
	Hex      string `json:"hex" yaml:"hex"`
}

func (a *app) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <fraction>",
		Short: "Encode a fraction in binary, as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fraction.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := f.MarshalBinary()
			if err != nil {
				return err
			}
			a.logger.DebugContext(cmd.Context(), "Encoded", "value", f.Canonical(), "binary", logging.AsHex(b))
			r := &codecResult{Fraction: f.Canonical(), Hex: hex.EncodeToString(b)}
			return a.print(cmd, r, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, r.Hex)
				return err
			})
		},
	}
}

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a binary fraction given as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.BadFormat.WithFormat("%q is not hex: %w", args[0], err)
			}
			var f fraction.Fraction
			err = f.UnmarshalBinary(b)
			if err != nil {
				a.logger.DebugContext(cmd.Context(), "Decode failed", "binary", logging.AsHex(b), "error", err)
				return err
			}
			r := &codecResult{Fraction: f.Canonical(), Hex: args[0]}
			return a.print(cmd, r, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, r.Fraction)
				return err
			})
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.config.encodeTOML()
			if err != nil {
				return errors.InternalError.WithFormat("encode toml: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
