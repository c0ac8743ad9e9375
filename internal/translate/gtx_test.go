// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGTX(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"single segment", `[[["Jarrón","Vase",null,null,10]],null,"en"]`, "Jarrón", false},
		{"multiple segments", `[[["Hola ","Hello ",null,null,10],["mundo","world",null,null,10]],null,"en"]`, "Hola mundo", false},
		{"skips malformed segments", `[[[1,"x"],["ok","y"]],null,"en"]`, "ok", false},
		{"null first element", `[null,null,"en"]`, "", true},
		{"empty array", `[]`, "", true},
		{"empty segments", `[[],null,"en"]`, "", true},
		{"not json", `<html>`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGTX([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGTXBackend_RequestParams(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		fmt.Fprint(w, `[[["Flores","Flowers",null,null,10]],null,"en"]`)
	}))
	defer ts.Close()

	b := &GTXBackend{Client: ts.Client(), Endpoint: ts.URL, UserAgent: "test/0.1"}
	got, err := b.Translate(context.Background(), "Flowers & Birds", "es")
	require.NoError(t, err)
	assert.Equal(t, "Flores", got)

	q := captured.URL.Query()
	assert.Equal(t, "gtx", q.Get("client"))
	assert.Equal(t, "auto", q.Get("sl"))
	assert.Equal(t, "es", q.Get("tl"))
	assert.Equal(t, "t", q.Get("dt"))
	assert.Equal(t, "Flowers & Birds", q.Get("q"))
	assert.Equal(t, "test/0.1", captured.Header.Get("User-Agent"))
}

func TestGTXBackend_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	b := &GTXBackend{Client: ts.Client(), Endpoint: ts.URL}
	_, err := b.Translate(context.Background(), "Vase", "es")
	assert.Error(t, err)
}

func TestGTXBackend_ThroughAdapter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[null]`)
	}))
	defer ts.Close()

	a := NewAdapter(&GTXBackend{Client: ts.Client(), Endpoint: ts.URL}, "Desconocido", nil)
	got := a.Translate(context.Background(), "Bowl", "es")
	assert.Equal(t, Outcome{Text: "Bowl", Kind: Passthrough}, got)
}
