// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pdiddy/art-explorer/internal/metrics"
	"github.com/pdiddy/art-explorer/pkg/types"
)

// BreakerBackend guards a Backend with a circuit breaker. While the breaker
// is open calls fail fast without reaching the wrapped backend, which the
// Adapter resolves to the original text.
type BreakerBackend struct {
	next Backend
	cb   *gobreaker.CircuitBreaker[string]
}

// NewBreakerBackend wraps next. Zero fields in cfg take defaults: 1 half-open
// probe, 1 minute interval, 30 second open timeout, trip at 60% failures over
// at least 10 requests.
func NewBreakerBackend(next Backend, cfg types.BreakerConfig, logger *slog.Logger) *BreakerBackend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 10
	}
	if cfg.FailureRatio == 0 {
		cfg.FailureRatio = 0.6
	}

	metrics.BreakerState.Set(0)
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "translate-" + next.Name(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translation breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.Set(stateValue(to))
		},
	})
	return &BreakerBackend{next: next, cb: cb}
}

// Name returns the wrapped backend's identifier.
func (b *BreakerBackend) Name() string { return b.next.Name() }

// Translate calls the wrapped backend unless the breaker is open.
func (b *BreakerBackend) Translate(ctx context.Context, text, target string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		out, err := b.next.Translate(ctx, text, target)
		if err == nil && out == "" {
			return "", ErrNoTranslation
		}
		return out, err
	})
}

// State reports the breaker state.
func (b *BreakerBackend) State() gobreaker.State { return b.cb.State() }

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
