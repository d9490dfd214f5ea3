// Package txn wraps a unit of work in an acquire/execute/commit-or-rollback/
// release envelope, with an optional bounded-retry variant for transient
// failures. Command handlers run all their writes through this package
// instead of managing transaction lifecycles by hand.
package txn

import (
	"context"
)

// Tx is the minimal transaction-control surface of a unit of work.
// The concrete unit of work types in the commands package all satisfy it.
type Tx interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Factory produces fresh unit-of-work instances. One instance serves exactly
// one Execute call; instances are never reused or shared across goroutines.
type Factory[U Tx] interface {
	Create() U
}

// Work is a caller-supplied operation executed under one transaction.
// It receives the unit of work its repositories are bound to. Results are
// returned through variables the closure captures.
type Work[U Tx] func(ctx context.Context, uow U) error

// Execute runs work inside a single transaction:
//
//   - creates a unit of work and begins it (leasing one pooled connection)
//   - invokes work
//   - commits when work returns nil, rolls back when it returns an error
//   - releases the leased connection on every exit path, including panic
//     and context cancellation
//
// Errors from work propagate unchanged; Execute never swallows or converts
// them, it only guarantees cleanup. Acquisition failures (pool exhausted or
// acquire timeout) surface immediately and are never retried here.
func Execute[U Tx](ctx context.Context, factory Factory[U], work Work[U]) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback(ctx)
		}
	}()

	if err := work(ctx, uow); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}
	committed = true

	return nil
}
