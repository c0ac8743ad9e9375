// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate provides best-effort machine translation of record text.
//
// A Backend performs one call to a translation service. The Adapter wraps a
// Backend and never fails: empty text resolves to the "unknown" sentinel
// without a call, a usable reply resolves to the translation, and anything
// else resolves to the original text.
package translate

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pdiddy/art-explorer/internal/metrics"
)

// ErrNoTranslation is returned by backends whose reply lacks a translation.
var ErrNoTranslation = errors.New("response has no translation")

// Backend translates text into the target language with a single call.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text, target string) (string, error)
}

// Kind is the terminal state of one field translation.
type Kind string

const (
	// Translated means the backend produced the text.
	Translated Kind = "translated"
	// Passthrough means the backend failed and the original text is kept.
	Passthrough Kind = "passthrough"
	// Skipped means there was no text and the backend was not called.
	Skipped Kind = "skipped"
)

// Outcome is the resolved text of one translation and how it was reached.
type Outcome struct {
	Text string
	Kind Kind
}

// Adapter turns a Backend into a call that always resolves.
type Adapter struct {
	backend Backend
	unknown string
	logger  *slog.Logger
}

// NewAdapter returns an Adapter over b. unknown is the sentinel used for
// empty input.
func NewAdapter(b Backend, unknown string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{backend: b, unknown: unknown, logger: logger}
}

// Translate resolves text in the target language. It calls the backend at
// most once, adds no retries or timeout of its own, and never returns an
// error.
func (a *Adapter) Translate(ctx context.Context, text, target string) Outcome {
	if text == "" {
		metrics.RecordTranslation(metrics.OutcomeSkipped)
		return Outcome{Text: a.unknown, Kind: Skipped}
	}

	a.logger.Debug("translating", "text", text, "target", target, "backend", a.backend.Name())
	got, err := a.backend.Translate(ctx, text, target)
	if err == nil && got == "" {
		err = ErrNoTranslation
	}
	if err != nil {
		a.logger.Warn("translation failed, keeping original text", "error", err, "backend", a.backend.Name())
		metrics.RecordTranslation(metrics.OutcomePassthrough)
		return Outcome{Text: text, Kind: Passthrough}
	}

	a.logger.Debug("translated", "text", text, "translation", got)
	metrics.RecordTranslation(metrics.OutcomeTranslated)
	return Outcome{Text: got, Kind: Translated}
}
