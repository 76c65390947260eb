// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/fraction/internal/logging"
	cmdutil "gitlab.com/accumulatenetwork/fraction/internal/util/cmd"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
	"golang.org/x/exp/slog"
)

func main() {
	cmdutil.Check(newRootCmd().Execute())
}

type app struct {
	viper  *viper.Viper
	config *Config
	logger *slog.Logger

	flag struct {
		ConfigFile string
		NoColor    bool
	}
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	cmd := &cobra.Command{
		Use:               "frac",
		Short:             "Exact rational number arithmetic",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.flag.ConfigFile, "config", "", "Configuration file (toml, yaml, or json)")
	flags.StringP("output", "o", "text", "Output format (text, json, or yaml)")
	flags.Int("precision", fraction.DefaultPrecision, "Number of decimal places kept when converting floats")
	flags.String("log-level", "error", "Log level, optionally per command, e.g. warn;eval=debug")
	flags.String("log-format", "text", "Log format (text, plain, or json)")
	flags.BoolVar(&a.flag.NoColor, "no-color", false, "Disable colored output")

	bindFlag(a.viper, "output", flags.Lookup("output"))
	bindFlag(a.viper, "precision", flags.Lookup("precision"))
	bindFlag(a.viper, "log.level", flags.Lookup("log-level"))
	bindFlag(a.viper, "log.format", flags.Lookup("log-format"))

	cmd.AddCommand(
		a.newParseCmd(),
		a.newFromFloatCmd(),
		a.newEvalCmd(),
		a.newCmpCmd(),
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.viper, a.flag.ConfigFile)
	if err != nil {
		return err
	}

	if a.flag.NoColor {
		cfg.Color = false
	}
	if !cfg.Color {
		color.NoColor = true
	}

	logger, err := newLogger(cfg.Log, cfg.Color, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = logger.With("module", cmd.Name())
	cmd.SetContext(logging.With(cmd.Context(), "command", cmd.CommandPath()))
	a.logger.DebugContext(cmd.Context(), "Loaded configuration", "file", a.flag.ConfigFile, "output", cfg.Output, "precision", cfg.Precision)
	return nil
}
