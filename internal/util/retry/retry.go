// Package retry provides bounded retry and polling helpers for remote operations.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds retry configuration.
type Config struct {
	// Attempts is the total number of times the operation is invoked,
	// including the first call.
	Attempts int
	// Delay is the wait between consecutive attempts.
	Delay time.Duration
	// Multiplier scales the delay after each attempt. 1.0 keeps the
	// interval fixed.
	Multiplier float64
	// MaxDelay caps the delay when Multiplier grows it.
	MaxDelay time.Duration
}

// Option is a functional option for retry configuration.
type Option func(*Config)

// Do invokes operation until it succeeds or the attempt budget is spent.
// The interval between attempts is fixed unless WithBackoff is given.
// Context cancellation is honored between attempts.
//
// Errors wrapped with Fatal() stop the loop immediately.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		Attempts:   3,
		Delay:      10 * time.Second,
		Multiplier: 1.0,
		MaxDelay:   10 * time.Second,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.Delay
	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if IsFatal(err) {
			return fmt.Errorf("fatal error (not retrying): %w", err)
		}

		if attempt < cfg.Attempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(delay):
				delay = time.Duration(float64(delay) * cfg.Multiplier)
				if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
					delay = cfg.MaxDelay
				}
			}
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.Attempts, lastErr)
}

// WithAttempts sets the total number of attempts.
func WithAttempts(n int) Option {
	return func(c *Config) {
		c.Attempts = n
	}
}

// WithDelay sets the wait between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
		if c.MaxDelay < d {
			c.MaxDelay = d
		}
	}
}

// WithBackoff enables growing delays. The delay is multiplied by m after
// each attempt, capped at max.
func WithBackoff(m float64, max time.Duration) Option {
	return func(c *Config) {
		c.Multiplier = m
		c.MaxDelay = max
	}
}

// ErrExhausted is returned by Poll when every probe, including the final
// one, reported not done.
var ErrExhausted = errors.New("poll iterations exhausted")

// PollConfig bounds a fixed-interval poll.
type PollConfig struct {
	// Iterations is the number of probe+wait rounds.
	Iterations int
	// Interval is the fixed wait between probes. The remote system's
	// convergence time is unobservable, so the interval never grows.
	Interval time.Duration
}

// Probe reports whether the awaited state has been reached. A non-nil
// error does not end the poll; it is surfaced to OnError and the poll
// continues.
type Probe func(ctx context.Context) (done bool, err error)

// PollObserver receives probe progress. Implementations must not block.
type PollObserver interface {
	PollAttempt(iteration, total int)
	PollError(iteration int, err error)
}

// Poll invokes probe at a fixed interval until it reports done, the
// iteration budget is spent, or ctx is cancelled. After the last interval
// one final probe runs before Poll gives up with ErrExhausted.
func Poll(ctx context.Context, cfg PollConfig, probe Probe, obs PollObserver) error {
	for i := 1; i <= cfg.Iterations; i++ {
		if obs != nil {
			obs.PollAttempt(i, cfg.Iterations)
		}

		done, err := probe(ctx)
		if err != nil && obs != nil {
			obs.PollError(i, err)
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled after %d poll iterations: %w", i, ctx.Err())
		case <-time.After(cfg.Interval):
		}
	}

	// One last look: the state may have converged during the final wait.
	done, err := probe(ctx)
	if err != nil && obs != nil {
		obs.PollError(cfg.Iterations+1, err)
	}
	if done {
		return nil
	}

	return ErrExhausted
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
// Operations that encounter fatal errors will not be retried.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
