// Package retry runs an operation a bounded number of times with a delay
// between attempts. It is a plain loop: no jitter, no circuit state.
package retry

import (
	"context"
	"time"
)

// Policy configures Do.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Delay is the sleep before the second attempt.
	Delay time.Duration
	// Multiplier scales Delay after every failed attempt. Values <= 1 keep it fixed.
	Multiplier float64
	// Retryable decides whether a failed attempt may be repeated.
	Retryable func(error) bool
	// OnRetry, when set, is called before each backoff sleep.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts run out. The last error is returned on exhaustion. Cancelling ctx
// stops the loop between attempts and returns the last error seen.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.Delay

	var (
		result T
		err    error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = fn(ctx, attempt)
		if err == nil {
			return result, nil
		}
		if attempt == attempts || p.Retryable == nil || !p.Retryable(err) {
			return result, err
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}
		if !sleep(ctx, delay) {
			return result, err
		}
		if p.Multiplier > 1 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
	}
	return result, err
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
