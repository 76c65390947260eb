// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/accumulatenetwork/fraction/pkg/errors"
	"golang.org/x/exp/slog"
)

const messageKey = "message"

// SlogConfig is the level configuration of a handler. Records with a module
// attribute are filtered by the level of that module, if there is one.
type SlogConfig struct {
	DefaultLevel slog.Level
	Modules      map[string]slog.Level
}

// ParseLevels parses a level specification such as "error" or
// "warn;eval=debug". An entry without a module, or with the module "*", sets
// the default level.
func ParseLevels(s string) (SlogConfig, error) {
	c := SlogConfig{DefaultLevel: slog.LevelError}
	for _, rule := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' }) {
		parts := strings.Split(rule, "=")
		if len(parts) > 2 {
			return SlogConfig{}, errors.BadRequest.WithFormat("invalid log rule %q", rule)
		}

		var level slog.Level
		err := level.UnmarshalText([]byte(strings.TrimSpace(parts[len(parts)-1])))
		if err != nil {
			return SlogConfig{}, errors.BadRequest.WithFormat("invalid log level in %q", rule)
		}

		module := "*"
		if len(parts) == 2 {
			module = strings.ToLower(strings.TrimSpace(parts[0]))
		}
		if module == "*" {
			c.DefaultLevel = level
			continue
		}
		if c.Modules == nil {
			c.Modules = map[string]slog.Level{}
		}
		c.Modules[module] = level
	}
	return c, nil
}

func (c SlogConfig) lowestLevel() slog.Level {
	lowest := c.DefaultLevel
	for _, l := range c.Modules {
		if l < lowest {
			lowest = l
		}
	}
	return lowest
}

// NewSlogHandler returns a handler that writes JSON records to w, with the
// message under the "message" key. Wrap w with [ConsoleSlogWriter] for
// human-readable output.
func NewSlogHandler(c SlogConfig, w io.Writer) (slog.Handler, error) {
	if w == nil {
		return nil, errors.BadRequest.With("missing log writer")
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: c.lowestLevel(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.MessageKey || len(groups) > 0 {
				return a
			}
			if a.Value.Kind() == slog.KindString {
				return slog.Any(messageKey, a.Value)
			}
			return slog.String(messageKey, fmt.Sprint(a.Value.Any()))
		},
	})

	return &logHandler{
		handler:     h,
		level:       c.DefaultLevel,
		lowestLevel: c.lowestLevel(),
		modules:     c.Modules,
	}, nil
}

// ConsoleSlogWriter returns a writer that formats JSON records from
// [NewSlogHandler] for a console.
func ConsoleSlogWriter(w io.Writer, color bool) io.Writer {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
		FormatMessage: func(i interface{}) string {
			s, ok := i.(string)
			if ok {
				return s
			}
			return fmt.Sprint(i)
		},
	}
}

type logHandler struct {
	handler     slog.Handler
	level       slog.Level
	lowestLevel slog.Level
	modules     map[string]slog.Level
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	i := *h
	i.handler = h.handler.WithAttrs(attrs)
	i.level = h.levelFor(h.level, attrs)
	return &i
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	i := *h
	i.handler = h.handler.WithGroup(name)
	return &i
}

func (h *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.lowestLevel {
		return false
	}
	return h.handler.Enabled(ctx, level)
}

func (h *logHandler) Handle(ctx context.Context, record slog.Record) error {
	level := h.levelFor(h.level, Attrs(ctx))
	record.Attrs(func(a slog.Attr) bool {
		level = h.levelFor(level, []slog.Attr{a})
		return true
	})
	if record.Level < level {
		return nil
	}

	record.AddAttrs(Attrs(ctx)...)
	return h.handler.Handle(ctx, record)
}

func (h *logHandler) levelFor(level slog.Level, attrs []slog.Attr) slog.Level {
	for _, a := range attrs {
		if a.Key != "module" {
			continue
		}
		if l, ok := h.modules[strings.ToLower(a.Value.String())]; ok {
			level = l
		}
	}
	return level
}
