// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich fetches a collection object and overwrites a fixed set of its
// text fields with machine translations.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/internal/translate"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// TranslatableFields lists the record fields rewritten with translated text.
// Every other field passes through unmodified.
var TranslatableFields = [...]string{
	"title",
	"culture",
	"dynasty",
	"period",
	"objectName",
	"objectDate",
	"medium",
	"dimensions",
	"classification",
	"department",
	"artistDisplayName",
	"artistDisplayBio",
}

// ObjectFetcher loads one object record from the collection.
type ObjectFetcher interface {
	Object(ctx context.Context, id string) (types.ObjectRecord, error)
}

// Translator resolves one field's text. It must not fail.
type Translator interface {
	Translate(ctx context.Context, text, target string) translate.Outcome
}

// Enricher produces translated object records.
type Enricher struct {
	objects    ObjectFetcher
	translator Translator
	target     string
	sentinels  locale.Sentinels
	logger     *slog.Logger
}

// New returns an Enricher translating into target.
func New(objects ObjectFetcher, translator Translator, target string, sentinels locale.Sentinels, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Enricher{
		objects:    objects,
		translator: translator,
		target:     target,
		sentinels:  sentinels,
		logger:     logger,
	}
}

// Enrich fetches object id and returns it with TranslatableFields translated.
// Only a failed fetch is an error; translation problems degrade per field.
func (e *Enricher) Enrich(ctx context.Context, id string) (types.ObjectRecord, error) {
	record, err := e.objects.Object(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching object %s: %w", id, err)
	}

	NormalizeTitle(record, e.sentinels.Untitled)
	translated := e.translateFields(ctx, record)

	out := record.Clone()
	for field, text := range translated {
		out[field] = text
	}

	e.logger.Debug("object enriched",
		"object_id", id,
		"original_title", record.String("title"),
		"translated_title", out.String("title"),
	)
	return out, nil
}

// NormalizeTitle replaces an absent or blank title with untitled.
func NormalizeTitle(record types.ObjectRecord, untitled string) {
	title, ok := record["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		record["title"] = untitled
	}
}

// translateFields translates every present field concurrently and waits for
// all of them. Absent fields get their sentinel without a translation call.
func (e *Enricher) translateFields(ctx context.Context, record types.ObjectRecord) map[string]string {
	results := make([]string, len(TranslatableFields))
	var wg sync.WaitGroup

	for i, field := range TranslatableFields {
		text, present := record.Text(field)
		if !present {
			results[i] = e.sentinelFor(field)
			continue
		}
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = e.translator.Translate(ctx, text, e.target).Text
		}(i, text)
	}
	wg.Wait()

	out := make(map[string]string, len(TranslatableFields))
	for i, field := range TranslatableFields {
		out[field] = results[i]
	}
	return out
}

func (e *Enricher) sentinelFor(field string) string {
	if field == "title" {
		return e.sentinels.Untitled
	}
	return e.sentinels.Unknown
}
