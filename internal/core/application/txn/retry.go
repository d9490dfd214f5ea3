package txn

import (
	"context"
	"time"
)

// RetryPolicy bounds ExecuteWithRetry.
//
// After the failed attempt n (counted from 0), the next attempt waits
// BaseDelay << n. With MaxAttempts=3 and BaseDelay=1s the delays are
// 1s and 2s; the error of the final attempt is returned unmodified.
type RetryPolicy struct {
	// MaxAttempts is the total number of invocations, including the first.
	MaxAttempts int

	// BaseDelay is the backoff unit. No jitter is applied.
	BaseDelay time.Duration

	// Retryable decides whether an error is worth another attempt.
	// When nil, every error is retried until the attempt budget runs out.
	// That default mirrors the behavior this service always had, but
	// retrying non-idempotent or permanently failing work is unsafe;
	// callers that can classify their errors should set a predicate.
	Retryable func(err error) bool
}

// DefaultRetryPolicy returns the policy used by background jobs:
// three attempts, one-second backoff unit, every error retried.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// ExecuteWithRetry runs Execute up to policy.MaxAttempts times with
// exponential backoff between attempts. Each attempt gets a fresh unit of
// work. On exhaustion the last error is returned unmodified; cancellation
// during a backoff sleep returns the context's error.
func ExecuteWithRetry[U Tx](ctx context.Context, factory Factory[U], work Work[U], policy RetryPolicy) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, policy.BaseDelay<<(attempt-1)); err != nil {
				return err
			}
		}

		lastErr = Execute(ctx, factory, work)
		if lastErr == nil {
			return nil
		}
		if policy.Retryable != nil && !policy.Retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
