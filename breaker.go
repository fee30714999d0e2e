package convertirse

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	MaxFailures uint32        // Consecutive failures before the circuit opens
	Interval    time.Duration // Cyclic period for clearing counts while closed
	Timeout     time.Duration // How long the circuit stays open before half-open
}

// DefaultBreakerConfig returns sensible defaults for the circuit breaker.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
	}
}

// CircuitBreakerProvider wraps an AIProvider with a circuit breaker, so a
// flapping backend stops receiving traffic until it recovers.
type CircuitBreakerProvider struct {
	provider AIProvider
	cb       *gobreaker.CircuitBreaker
}

// NewCircuitBreakerProvider creates a provider guarded by a circuit breaker.
func NewCircuitBreakerProvider(provider AIProvider, cfg BreakerConfig) *CircuitBreakerProvider {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = DefaultBreakerConfig().MaxFailures
	}

	settings := gobreaker.Settings{
		Name:     "convertirse",
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}

	return &CircuitBreakerProvider{
		provider: provider,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Generate implements AIProvider through the circuit breaker. When the
// circuit is open the call fails immediately with a non-retryable
// *GenerationError.
func (p *CircuitBreakerProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	v, err := p.cb.Execute(func() (interface{}, error) {
		return p.provider.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &GenerationError{
				Message:   "model backend unavailable (circuit open)",
				Cause:     err,
				Retryable: false,
			}
		}
		return "", err
	}

	return v.(string), nil
}

// State returns the current circuit breaker state.
func (p *CircuitBreakerProvider) State() gobreaker.State {
	return p.cb.State()
}

// Model exposes the wrapped provider's model identifier when available.
func (p *CircuitBreakerProvider) Model() string {
	if m, ok := p.provider.(ModelIdentifier); ok {
		return m.Model()
	}
	return ""
}
