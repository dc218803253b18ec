package graph

import (
	"context"
	"fmt"
	"math"
	"time"
)

// RetryConfig configures retry behavior for an operation
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64

	// Timeout bounds every single attempt. Zero disables it.
	Timeout time.Duration

	// RetryableErrors determines if an error should trigger retry
	RetryableErrors func(error) bool

	// OnRetry is called after a failed attempt that will be retried
	OnRetry func(attempt int, err error)
}

// Retry runs fn until it succeeds or MaxAttempts is reached, waiting with
// exponential backoff between attempts. The last error is returned wrapped.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(cfg.MaxAttempts, 1)
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("retry cancelled: %w", err)
		}

		result, err := WithTimeout(ctx, cfg.Timeout, fn)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.RetryableErrors != nil && !cfg.RetryableErrors(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}

		if delay > 0 {
			select {
			case <-ctx.Done():
				return zero, fmt.Errorf("retry cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay = nextDelay(delay, cfg)
		}
	}

	return zero, fmt.Errorf("max retries (%d) exceeded: %w", attempts, lastErr)
}

func nextDelay(d time.Duration, cfg RetryConfig) time.Duration {
	factor := cfg.BackoffFactor
	if factor <= 0 {
		factor = 1
	}
	next := time.Duration(math.Min(float64(d)*factor, math.MaxInt64))
	if cfg.MaxDelay > 0 && next > cfg.MaxDelay {
		next = cfg.MaxDelay
	}
	return next
}

// WithTimeout runs fn with a context that expires after d. A zero d calls fn
// with ctx unchanged. If fn ignores its context, WithTimeout still returns
// once the deadline passes.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if d <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v, err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		// A result that is already waiting wins over the deadline.
		select {
		case res := <-done:
			return res.val, res.err
		default:
		}
		var zero T
		return zero, fmt.Errorf("timed out after %s: %w", d, ctx.Err())
	}
}
