// Package ratelimit implements fixed-window request limiting over a
// pluggable counter store. The HTTP middleware consumes the Limiter; the
// Redis adapter provides the production CounterStore and MemoryStore backs
// tests and single-process deployments.
package ratelimit

import (
	"context"
	"time"
)

// CounterStore is the atomic counter backend of the limiter.
//
// Admit must be atomic with respect to concurrent calls for the same key:
// check-then-increment as one operation, never two.
type CounterStore interface {
	// Admit checks the counter for key against max. If the counter is
	// below max, it increments the counter, (re)sets its expiry to
	// window, and reports true. If the counter has already reached max,
	// it reports false and leaves the counter untouched.
	Admit(ctx context.Context, key string, max int64, window time.Duration) (bool, error)

	// Count returns the current counter value without mutating anything.
	// A missing counter reads as 0.
	Count(ctx context.Context, key string) (int64, error)
}

// Limiter enforces a fixed-window rate limit per identifier.
//
// Fixed window means the counter simply expires window after the last
// admitted request that (re)armed it; a client can burst up to max
// requests at the end of one window and max more at the start of the
// next. That is accepted behavior, not a bug; callers needing smooth
// limiting want a sliding-window or token-bucket limiter instead.
//
// Store failures are returned to the caller. The limiter never guesses:
// it neither fails open (admitting everything) nor fails closed (denying
// everything) when the counter store is down.
type Limiter struct {
	store CounterStore
}

// NewLimiter creates a Limiter over the given counter store.
func NewLimiter(store CounterStore) *Limiter {
	return &Limiter{store: store}
}

// IsAllowed reports whether the identifier may perform another request
// under a limit of max requests per window. Admitted requests increment
// the identifier's counter; denied requests leave it untouched, so a
// denied client's window is never extended by its own retries.
func (l *Limiter) IsAllowed(ctx context.Context, identifier string, max int64, window time.Duration) (bool, error) {
	return l.store.Admit(ctx, key(identifier), max, window)
}

// GetRemaining returns how many requests the identifier has left in the
// current window. Read-only; never mutates the counter. Returns 0 when
// the counter has reached or exceeded max.
func (l *Limiter) GetRemaining(ctx context.Context, identifier string, max int64) (int64, error) {
	count, err := l.store.Count(ctx, key(identifier))
	if err != nil {
		return 0, err
	}

	remaining := max - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func key(identifier string) string {
	return "ratelimit:" + identifier
}
