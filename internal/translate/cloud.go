// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/pdiddy/art-explorer/internal/httputil"
)

// DefaultCloudEndpoint is the keyed translation API endpoint.
const DefaultCloudEndpoint = "https://translation.googleapis.com/language/translate/v2"

// CloudBackend calls the keyed translation API.
type CloudBackend struct {
	Client    *http.Client
	Endpoint  string
	APIKey    string
	UserAgent string
}

// Name returns the backend identifier.
func (b *CloudBackend) Name() string { return "cloud" }

// Translate sends text for translation into target.
func (b *CloudBackend) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{
		"key":    {b.APIKey},
		"q":      {text},
		"target": {target},
		"format": {"text"},
	}
	body, err := httputil.Get(ctx, b.Client, b.Endpoint+"?"+params.Encode(), b.UserAgent)
	if err != nil {
		// The request URL carries the key; keep it out of the error.
		var se *httputil.StatusError
		if errors.As(err, &se) {
			return "", fmt.Errorf("cloud translation returned HTTP %d", se.StatusCode)
		}
		var ue *url.Error
		if errors.As(err, &ue) {
			return "", fmt.Errorf("cloud translation request: %w", ue.Err)
		}
		return "", fmt.Errorf("cloud translation request failed")
	}

	var cr cloudResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("parsing cloud translation response: %w", err)
	}
	if len(cr.Data.Translations) == 0 || cr.Data.Translations[0].TranslatedText == "" {
		return "", ErrNoTranslation
	}
	return cr.Data.Translations[0].TranslatedText, nil
}

type cloudResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}
