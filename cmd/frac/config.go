// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/accumulatenetwork/fraction/internal/logging"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"gitlab.com/accumulatenetwork/fraction/pkg/fraction"
)

// Config is the configuration of the frac command. Values are read from the
// config file, then FRAC_* environment variables, then flags.
type Config struct {
	Output    string    `mapstructure:"output" toml:"output" validate:"oneof=text json yaml"`
	Precision int       `mapstructure:"precision" toml:"precision" validate:"min=0,max=8"`
	Tolerance string    `mapstructure:"tolerance" toml:"tolerance" validate:"omitempty,fraction"`
	Color     bool      `mapstructure:"color" toml:"color"`
	Log       LogConfig `mapstructure:"log" toml:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level" validate:"loglevel"`
	Format string `mapstructure:"format" toml:"format" validate:"oneof=text plain json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("precision", fraction.DefaultPrecision)
	v.SetDefault("tolerance", "")
	v.SetDefault("color", true)
	v.SetDefault("log.level", "error")
	v.SetDefault("log.format", "text")
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		panic(fmt.Errorf("no flag for %q", key))
	}
	err := v.BindPFlag(key, flag)
	if err != nil {
		panic(err)
	}
}

func loadConfig(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("frac")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return nil, errors.BadRequest.WithFormat("read config: %w", err)
		}
	}

	config := new(Config)
	err := v.Unmarshal(config)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("unmarshal config: %w", err)
	}

	validate, err := newValidator()
	if err != nil {
		return nil, errors.InternalError.Wrap(err)
	}
	err = validate.Struct(config)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("invalid config: %w", err)
	}
	return config, nil
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("fraction", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			panic(fmt.Errorf("%q is not a string", fl.FieldName()))
		}

		_, err := fraction.Parse(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	err = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logging.ParseLevels(fl.Field().String())
		return err == nil
	})
	return v, err
}

func (c *Config) encodeTOML() ([]byte, error) {
	return toml.Marshal(*c)
}
