// SPDX-License-Identifier: MIT

// Package logger builds the slog.Logger used by gthsolve.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// ErrUnknownFormat indicates a log format other than text or json.
var ErrUnknownFormat = errors.New("logger: unknown format")

// Config selects the handler.
type Config struct {
	Format string // "text" or "json"
	Debug  bool   // debug level with source locations
}

// New returns a logger writing to w. Timestamps are UTC RFC 3339 with
// nanoseconds in both formats.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}

			return a
		},
	}

	var h slog.Handler
	switch cfg.Format {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
