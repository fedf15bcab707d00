package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures Breaker.
type BreakerSettings struct {
	Name string
	// Failures is the number of consecutive failures that opens the circuit.
	Failures uint32
	// Cooldown is how long the circuit stays open before a trial call.
	Cooldown time.Duration
}

// Breaker wraps a Generator with a circuit breaker. While the circuit is
// open Generate fails immediately with gobreaker.ErrOpenState.
type Breaker struct {
	next Generator
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next.
func NewBreaker(next Generator, s BreakerSettings, log *slog.Logger) *Breaker {
	log = log.With("adapter", "llm_breaker")
	failures := s.Failures
	if failures == 0 {
		failures = 3
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{next: next, cb: cb}
}

// Generate calls the wrapped generator through the circuit.
func (b *Breaker) Generate(ctx context.Context, p Prompt) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Generate(ctx, p)
	})
	if err != nil {
		return "", fmt.Errorf("llm breaker: %w", err)
	}
	return out.(string), nil
}

// State returns the current circuit state, for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
