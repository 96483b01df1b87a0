package rates

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures retry behavior with exponential backoff.
// The zero value disables retries entirely.
type RetryConfig struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	JitterFraction float64 // 0.0 to 1.0 — fraction of delay to randomize
}

// DefaultRetryConfig is tuned for transient rate-source hiccups.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:     2,
	InitialDelay:   500 * time.Millisecond,
	MaxDelay:       5 * time.Second,
	BackoffFactor:  2.0,
	JitterFraction: 0.2,
}

// DoWithRetry executes fn with exponential backoff + jitter. It stops on
// success, on a non-retryable error (*InvalidRateError — the table was
// fetched fine, the code just isn't in it), on context cancellation, or
// when attempts are exhausted.
func DoWithRetry[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		var invalid *InvalidRateError
		if errors.As(err, &invalid) {
			return zero, err
		}

		if attempt >= cfg.MaxRetries {
			break
		}

		delay := float64(cfg.InitialDelay) * math.Pow(cfg.BackoffFactor, float64(attempt))
		if delay > float64(cfg.MaxDelay) {
			delay = float64(cfg.MaxDelay)
		}
		if cfg.JitterFraction > 0 {
			jitter := delay * cfg.JitterFraction * (rand.Float64()*2 - 1) // +/- jitter
			delay += jitter
			if delay < 0 {
				delay = float64(cfg.InitialDelay)
			}
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(delay)):
			// next attempt
		}
	}

	return zero, lastErr
}
