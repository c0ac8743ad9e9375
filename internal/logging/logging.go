// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the application's slog logger: a tint console
// handler (or JSON/text), optionally fanned out to Fluent Bit.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"

	"github.com/pdiddy/art-explorer/pkg/types"
)

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewConsoleHandler returns the handler for w in the given format: "json",
// "text", or colored console output for anything else.
func NewConsoleHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}
}

// New builds the logger described by cfg, writing console output to w. The
// returned close function flushes and closes the Fluent Bit client when one
// was opened.
func New(cfg types.LogConfig, w io.Writer, service string) (*slog.Logger, func() error, error) {
	level := ParseLevel(cfg.Level)
	handler := NewConsoleHandler(w, cfg.Format, level)
	closer := func() error { return nil }

	if cfg.Fluent.Enabled {
		tag := cfg.Fluent.Tag
		if tag == "" {
			tag = service
		}
		client, err := fluent.New(fluent.Config{
			FluentHost: cfg.Fluent.Host,
			FluentPort: cfg.Fluent.Port,
			TagPrefix:  tag,
			Async:      true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating fluent client: %w", err)
		}
		handler = NewMultiHandler(handler, NewFluentHandler(client, level))
		closer = client.Close
	}

	logger := slog.New(handler).With("service", service)
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
