// Package retry provides a generic retry mechanism with exponential backoff.
// It is used for outbound fare-provider calls, which fail transiently.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor is the factor for random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf is an optional predicate to decide if an error is retryable.
	// If nil, all errors are retried.
	RetryIf func(error) bool
}

// ProviderConfig is tuned for external API calls.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      SkipPermanent,
}

// DoWithResult executes a function that returns a value with retry logic.
// It returns the first successful result, or the last error if all attempts
// fail.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// sleepTime computes the backoff sleep duration with jitter and a max cap.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleep := delay + jitter
	if sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
