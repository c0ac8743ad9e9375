// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pdiddy/art-explorer/internal/httputil"
)

// DefaultGTXEndpoint is the keyless web translation endpoint.
const DefaultGTXEndpoint = "https://translate.googleapis.com/translate_a/single"

// GTXBackend calls the keyless translation endpoint. The source language is
// auto-detected.
type GTXBackend struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string
}

// Name returns the backend identifier.
func (b *GTXBackend) Name() string { return "gtx" }

// Translate sends text for translation into target.
func (b *GTXBackend) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{
		"client": {"gtx"},
		"sl":     {"auto"},
		"tl":     {target},
		"dt":     {"t"},
		"q":      {text},
	}
	body, err := httputil.Get(ctx, b.Client, b.Endpoint+"?"+params.Encode(), b.UserAgent)
	if err != nil {
		return "", fmt.Errorf("gtx request: %w", err)
	}
	return parseGTX(body)
}

// parseGTX extracts the translation from the nested-array reply. The first
// element lists sentence segments whose first element is translated text:
//
//	[[["Hola ","Hello ",null,null,10],["mundo","world",null,null,10]],null,"en"]
func parseGTX(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("parsing gtx response: %w", err)
	}
	if len(top) == 0 {
		return "", ErrNoTranslation
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", ErrNoTranslation
	}

	var b strings.Builder
	for _, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(parts[0], &s); err != nil {
			continue
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "", ErrNoTranslation
	}
	return b.String(), nil
}
