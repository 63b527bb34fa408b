package resilience

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig controls bounded retries with exponential backoff.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool
}

// DefaultRetryConfig returns the policy used for artifact loads. Deploy
// tooling replaces the model file non-atomically, so the first read after a
// change event can catch a half-written file.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// RetryableFunc is a function executed under a retry policy.
type RetryableFunc func() error

// Retry runs fn until it succeeds, the attempts are exhausted or ctx is
// cancelled. The error of the last attempt is returned.
func Retry(ctx context.Context, config RetryConfig, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if attempt == config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(calculateDelay(config, attempt)):
		}
	}

	return lastErr
}

// calculateDelay computes the backoff before the retry following attempt.
func calculateDelay(config RetryConfig, attempt int) time.Duration {
	delay := time.Duration(float64(config.InitialDelay) * math.Pow(config.BackoffFactor, float64(attempt)))
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	if config.JitterEnabled {
		if step := int64(delay / 10); step > 0 {
			delay += time.Duration(rand.Int63n(step))
		}
	}
	return delay
}
