// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics declares the Prometheus instruments for the proxy: upstream
// collection API calls, translation outcomes, the translation breaker and the
// HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Translation outcome labels.
const (
	OutcomeTranslated  = "translated"
	OutcomePassthrough = "passthrough"
	OutcomeSkipped     = "skipped"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "art_explorer_upstream_requests_total",
			Help: "Collection API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	Translations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "art_explorer_translations_total",
			Help: "Field translations by outcome (translated, passthrough, skipped)",
		},
		[]string{"outcome"},
	)

	// BreakerState is 0 closed, 1 half-open, 2 open.
	BreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "art_explorer_translation_breaker_state",
			Help: "Translation circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "art_explorer_http_requests_total",
			Help: "Proxy HTTP requests by route pattern and status code",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "art_explorer_http_request_duration_seconds",
			Help:    "Proxy HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// RecordUpstream counts one collection API call.
func RecordUpstream(endpoint string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

// RecordTranslation counts one field translation outcome.
func RecordTranslation(outcome string) {
	Translations.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest counts one served request and observes its latency.
func RecordHTTPRequest(route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
