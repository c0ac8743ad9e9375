// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- fake backend ---

type fakeBackend struct {
	out   string
	err   error
	calls int32
	seen  []string
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Translate(_ context.Context, text, _ string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.seen = append(f.seen, text)
	return f.out, f.err
}

func TestAdapter_EmptyTextSkipsBackend(t *testing.T) {
	b := &fakeBackend{out: "nunca"}
	a := NewAdapter(b, "Desconocido", nil)

	got := a.Translate(context.Background(), "", "es")

	assert.Equal(t, Outcome{Text: "Desconocido", Kind: Skipped}, got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&b.calls))
}

func TestAdapter_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		backend *fakeBackend
		want    Outcome
	}{
		{
			"usable translation",
			&fakeBackend{out: "Jarrón"},
			Outcome{Text: "Jarrón", Kind: Translated},
		},
		{
			"backend error keeps original",
			&fakeBackend{err: errors.New("connection reset")},
			Outcome{Text: "Vase", Kind: Passthrough},
		},
		{
			"missing payload keeps original",
			&fakeBackend{err: ErrNoTranslation},
			Outcome{Text: "Vase", Kind: Passthrough},
		},
		{
			"empty payload keeps original",
			&fakeBackend{out: ""},
			Outcome{Text: "Vase", Kind: Passthrough},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(tt.backend, "Desconocido", nil)
			got := a.Translate(context.Background(), "Vase", "es")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int32(1), atomic.LoadInt32(&tt.backend.calls), "backend is called exactly once")
			assert.Equal(t, []string{"Vase"}, tt.backend.seen)
		})
	}
}
