// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"io"

	"gitlab.com/accumulatenetwork/fraction/internal/logging"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"golang.org/x/exp/slog"
)

func newLogger(c LogConfig, color bool, w io.Writer) (*slog.Logger, error) {
	levels, err := logging.ParseLevels(c.Level)
	if err != nil {
		return nil, err
	}

	switch c.Format {
	case "", "text":
		w = logging.ConsoleSlogWriter(w, color)
	case "plain":
		w = logging.ConsoleSlogWriter(w, false)
	case "json":
	default:
		return nil, errors.BadRequest.WithFormat("log format %q is not supported", c.Format)
	}

	h, err := logging.NewSlogHandler(levels, w)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}
