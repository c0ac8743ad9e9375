// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"log/slog"
	"net/http"

	"github.com/pdiddy/art-explorer/pkg/types"
)

// NewBackend picks the backend for cfg: the keyed API when an API key is
// configured, the keyless endpoint otherwise, optionally behind a breaker.
func NewBackend(cfg types.TranslateConfig, logger *slog.Logger) Backend {
	client := &http.Client{Timeout: cfg.Timeout}

	var b Backend
	if cfg.APIKey != "" {
		endpoint := cfg.CloudEndpoint
		if endpoint == "" {
			endpoint = DefaultCloudEndpoint
		}
		b = &CloudBackend{Client: client, Endpoint: endpoint, APIKey: cfg.APIKey, UserAgent: cfg.UserAgent}
	} else {
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = DefaultGTXEndpoint
		}
		b = &GTXBackend{Client: client, Endpoint: endpoint, UserAgent: cfg.UserAgent}
	}

	if cfg.Breaker.Enabled {
		b = NewBreakerBackend(b, cfg.Breaker, logger)
	}
	return b
}
