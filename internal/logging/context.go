// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"context"

	"golang.org/x/exp/slog"
)

type _contextKey struct{}

var contextKey _contextKey

// WithAttrs returns a context that adds the given attributes to every record
// logged with it.
func WithAttrs(ctx context.Context, attrs []slog.Attr) context.Context {
	old := Attrs(ctx)
	return context.WithValue(ctx, contextKey, append(old[:len(old):len(old)], attrs...))
}

// Attrs returns the attributes of the context.
func Attrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(contextKey).([]slog.Attr)
	return v
}

// With is WithAttrs with alternating keys and values. Arguments may also be
// slog.Attr values. A key without a value is logged under !BADKEY.
func With(ctx context.Context, args ...any) context.Context {
	attrs := make([]slog.Attr, 0, len(args)/2)
	for i := 0; i < len(args); i++ {
		if a, ok := args[i].(slog.Attr); ok {
			attrs = append(attrs, a)
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 == len(args) {
			attrs = append(attrs, slog.Any("!BADKEY", args[i]))
			continue
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
		i++
	}
	return WithAttrs(ctx, attrs)
}
