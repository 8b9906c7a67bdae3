package pubchem

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/chemtrans/internal/config"
)

// NewCircuitBreaker returns a breaker that trips after cfg.ConsecutiveFailures
// consecutive transport failures and half-opens after cfg.OpenTimeout.
// Returns nil when the breaker is disabled; Client treats nil as pass-through.
func NewCircuitBreaker(name string, cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	if cfg.Disabled {
		return nil
	}
	log := logger.With("breaker", name)
	threshold := cfg.ConsecutiveFailures

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Caller cancellation does not count as a failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}
