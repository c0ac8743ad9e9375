// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/art-explorer/internal/locale"
	"github.com/pdiddy/art-explorer/internal/translate"
	"github.com/pdiddy/art-explorer/pkg/types"
)

var testSentinels = locale.Sentinels{Untitled: "Sin título", Unknown: "Desconocido"}

// --- fakes ---

type fakeFetcher struct {
	record types.ObjectRecord
	err    error
	gotID  string
}

func (f *fakeFetcher) Object(_ context.Context, id string) (types.ObjectRecord, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.record.Clone(), nil
}

// upperTranslator "translates" by upper-casing and records every call.
type upperTranslator struct {
	mu    sync.Mutex
	calls []string
}

func (u *upperTranslator) Translate(_ context.Context, text, _ string) translate.Outcome {
	u.mu.Lock()
	u.calls = append(u.calls, text)
	u.mu.Unlock()
	return translate.Outcome{Text: strings.ToUpper(text), Kind: translate.Translated}
}

func (u *upperTranslator) called(text string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, c := range u.calls {
		if c == text {
			return true
		}
	}
	return false
}

// failingBackend fails for one input and echoes a marker for the rest.
type failingBackend struct {
	failOn string
}

func (f *failingBackend) Name() string { return "failing" }

func (f *failingBackend) Translate(_ context.Context, text, _ string) (string, error) {
	if text == f.failOn {
		return "", errors.New("backend unavailable")
	}
	return "ES:" + text, nil
}

func fullRecord() types.ObjectRecord {
	return types.ObjectRecord{
		"objectID":          "436535",
		"title":             "Wheat Field with Cypresses",
		"culture":           "Dutch",
		"dynasty":           "none",
		"period":            "Post-Impressionism",
		"objectName":        "Painting",
		"objectDate":        "1889",
		"medium":            "Oil on canvas",
		"dimensions":        "28 3/4 x 36 3/4 in.",
		"classification":    "Paintings",
		"department":        "European Paintings",
		"artistDisplayName": "Vincent van Gogh",
		"artistDisplayBio":  "Dutch, 1853-1890",
		"primaryImage":      "https://images.example/1.jpg",
		"additionalImages":  []any{"https://images.example/2.jpg", "https://images.example/3.jpg"},
		"isPublicDomain":    true,
	}
}

func TestTranslatableFieldsAreTwelve(t *testing.T) {
	assert.Len(t, TranslatableFields, 12)
}

func TestEnrich_TranslatesAllPresentFields(t *testing.T) {
	fetcher := &fakeFetcher{record: fullRecord()}
	tr := &upperTranslator{}
	e := New(fetcher, tr, "es", testSentinels, nil)

	got, err := e.Enrich(context.Background(), "436535")
	require.NoError(t, err)

	assert.Equal(t, "436535", fetcher.gotID)
	for _, field := range TranslatableFields {
		assert.Equal(t, strings.ToUpper(fullRecord().String(field)), got[field], field)
	}
	assert.Len(t, tr.calls, 12)

	// Untouched fields pass through.
	assert.Equal(t, "https://images.example/1.jpg", got["primaryImage"])
	assert.Equal(t, []string{"https://images.example/2.jpg", "https://images.example/3.jpg"}, got.Strings("additionalImages"))
	assert.Equal(t, true, got["isPublicDomain"])
	assert.Equal(t, "436535", got["objectID"])
}

func TestEnrich_TitleNormalizedBeforeTranslation(t *testing.T) {
	tests := []struct {
		name  string
		title any
	}{
		{"missing", nil},
		{"empty", ""},
		{"blank", "   \t"},
		{"not a string", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fullRecord()
			if tt.title == nil {
				delete(rec, "title")
			} else {
				rec["title"] = tt.title
			}
			tr := &upperTranslator{}
			e := New(&fakeFetcher{record: rec}, tr, "es", testSentinels, nil)

			got, err := e.Enrich(context.Background(), "1")
			require.NoError(t, err)

			assert.True(t, tr.called("Sin título"), "translation receives the sentinel title")
			assert.Equal(t, "SIN TÍTULO", got["title"])
			assert.NotEmpty(t, got["title"])
		})
	}
}

func TestEnrich_AbsentFieldsGetSentinelWithoutTranslation(t *testing.T) {
	rec := types.ObjectRecord{
		"objectID":     "7",
		"title":        "Bowl",
		"culture":      "",
		"dynasty":      nil,
		"primaryImage": "https://images.example/7.jpg",
	}
	tr := &upperTranslator{}
	e := New(&fakeFetcher{record: rec}, tr, "es", testSentinels, nil)

	got, err := e.Enrich(context.Background(), "7")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bowl"}, tr.calls, "only the present field is translated")
	assert.Equal(t, "BOWL", got["title"])
	for _, field := range TranslatableFields[1:] {
		assert.Equal(t, "Desconocido", got[field], field)
	}
}

func TestEnrich_TranslationFailureKeepsOriginalForThatFieldOnly(t *testing.T) {
	rec := fullRecord()
	adapter := translate.NewAdapter(&failingBackend{failOn: "Oil on canvas"}, testSentinels.Unknown, nil)
	e := New(&fakeFetcher{record: rec}, adapter, "es", testSentinels, nil)

	got, err := e.Enrich(context.Background(), "436535")
	require.NoError(t, err)

	assert.Equal(t, "Oil on canvas", got["medium"])
	for _, field := range TranslatableFields {
		if field == "medium" {
			continue
		}
		assert.Equal(t, "ES:"+rec.String(field), got[field], field)
	}
}

func TestEnrich_FetchFailure(t *testing.T) {
	tr := &upperTranslator{}
	e := New(&fakeFetcher{err: errors.New("HTTP 500")}, tr, "es", testSentinels, nil)

	got, err := e.Enrich(context.Background(), "1")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Empty(t, tr.calls)
}

// barrierTranslator blocks every call until n calls are in flight at once.
type barrierTranslator struct {
	n       int
	mu      sync.Mutex
	arrived int
	release chan struct{}
}

func (b *barrierTranslator) Translate(_ context.Context, text, _ string) translate.Outcome {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
	}
	b.mu.Unlock()
	<-b.release
	return translate.Outcome{Text: text, Kind: translate.Translated}
}

func TestEnrich_TranslationsRunConcurrently(t *testing.T) {
	bt := &barrierTranslator{n: len(TranslatableFields), release: make(chan struct{})}
	e := New(&fakeFetcher{record: fullRecord()}, bt, "es", testSentinels, nil)

	done := make(chan error, 1)
	go func() {
		_, err := e.Enrich(context.Background(), "1")
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("translations were not issued concurrently")
	}
}

func TestNormalizeTitle(t *testing.T) {
	rec := types.ObjectRecord{"title": "Kept"}
	NormalizeTitle(rec, "Untitled")
	assert.Equal(t, "Kept", rec["title"])

	rec = types.ObjectRecord{}
	NormalizeTitle(rec, "Untitled")
	assert.Equal(t, "Untitled", rec["title"])
}
