package resilience

import (
	"context"

	"github.com/cenkalti/backoff/v5"
)

// Guard runs reads against a dependency with bounded retries on transient
// errors and an optional circuit breaker.
type Guard struct {
	retry       RetryConfig
	breaker     *CircuitBreaker
	isTransient func(error) bool
}

func NewGuard(retry RetryConfig, breaker *CircuitBreaker, isTransient func(error) bool) *Guard {
	if isTransient == nil {
		isTransient = func(error) bool { return false }
	}
	return &Guard{
		retry:       NormalizeRetryConfig(retry),
		breaker:     breaker,
		isTransient: isTransient,
	}
}

// Do runs fn until it succeeds, fails permanently, or the attempts run out.
// Non-transient errors are returned after the first attempt.
func Do[T any](ctx context.Context, g *Guard, fn func(context.Context) (T, error)) (T, error) {
	if g == nil {
		return fn(ctx)
	}

	var zero T
	if g.breaker != nil {
		if err := g.breaker.Allow(); err != nil {
			return zero, err
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.retry.InitialInterval
	policy.MaxInterval = g.retry.MaxInterval

	out, err := backoff.Retry(ctx, func() (T, error) {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if ctx.Err() != nil || !g.isTransient(err) {
			return zero, backoff.Permanent(err)
		}
		return zero, err
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(g.retry.MaxAttempts)),
	)

	if g.breaker != nil {
		if err != nil && g.isTransient(err) {
			g.breaker.RecordFailure()
		} else {
			g.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return zero, err
	}
	return out, nil
}
