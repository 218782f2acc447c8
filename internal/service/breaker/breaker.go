// Package breaker wraps outbound catalog calls in a failure-counting state
// machine so the pipeline fails fast while the upstream API is degraded.
package breaker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned without invoking the wrapped operation while
// the circuit is open (or while half-open probe slots are exhausted).
var ErrCircuitOpen = errors.New("circuit breaker open")

type Settings struct {
	Name string

	// FailureThreshold consecutive failures in the closed state open the circuit.
	FailureThreshold uint32
	// SuccessThreshold consecutive half-open probe successes close it again.
	SuccessThreshold uint32
	// ResetTimeout is how long the circuit stays open before probing.
	ResetTimeout time.Duration
	// MonitoringWindow clears stale failure counts while closed, so sparse
	// failures spread over a long period never trip the breaker.
	MonitoringWindow time.Duration
}

const (
	DefaultFailureThreshold = 5
	DefaultSuccessThreshold = 2
	DefaultResetTimeout     = 60 * time.Second
	DefaultMonitoringWindow = 5 * time.Minute
)

func (s Settings) withDefaults() Settings {
	if s.FailureThreshold == 0 {
		s.FailureThreshold = DefaultFailureThreshold
	}
	if s.SuccessThreshold == 0 {
		s.SuccessThreshold = DefaultSuccessThreshold
	}
	if s.ResetTimeout == 0 {
		s.ResetTimeout = DefaultResetTimeout
	}
	if s.MonitoringWindow == 0 {
		s.MonitoringWindow = DefaultMonitoringWindow
	}
	return s
}

type Breaker struct {
	cb     *gobreaker.CircuitBreaker[any]
	logger *slog.Logger
}

type Option func(*Breaker)

func WithLogger(logger *slog.Logger) Option {
	return func(b *Breaker) {
		b.logger = logger
	}
}

func New(s Settings, opts ...Option) *Breaker {
	s = s.withDefaults()

	b := &Breaker{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}

	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.SuccessThreshold,
		Interval:    s.MonitoringWindow,
		Timeout:     s.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			b.logger.Info("circuit breaker state transition",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return b
}

// Execute runs op through the circuit. Rejections while open (and excess
// half-open probes) surface as ErrCircuitOpen; op errors pass through.
func (b *Breaker) Execute(op func() (any, error)) (any, error) {
	v, err := b.cb.Execute(op)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		return nil, err
	}
	return v, nil
}

// State exposes the current circuit state for health reporting.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
