// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the enrichment proxy over HTTP: department and
// search passthrough, translated object lookup, health and metrics, and the
// static front end.
package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/art-explorer/pkg/types"
)

// NewRouter builds the proxy's route tree.
func NewRouter(cfg types.ServerConfig, h *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(logger), MetricsMiddleware, middleware.Recoverer)

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", TraceHeader},
			ExposedHeaders: []string{TraceHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/departments", h.Departments)
	r.Get("/search", h.Search)
	r.Get("/object/{id}", h.Object)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.PublicDir != "" {
		if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
		} else {
			logger.Warn("static directory unavailable, front end not served", "dir", cfg.PublicDir)
		}
	}

	return r
}

// NewServer returns an http.Server bound to cfg.Listen.
func NewServer(cfg types.ServerConfig, h *Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:    cfg.Listen,
		Handler: NewRouter(cfg, h, logger),
	}
}
