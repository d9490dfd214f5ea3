package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It leases one
// connection from the pool for the duration of the transaction and
// guarantees the lease is returned on Commit or Rollback.
// Client code must explicitly manage the transaction lifecycle; the
// txn.Executor wraps that lifecycle for command handlers.
type UnitOfWork interface {
	// Begin leases a pooled connection and starts a transaction on it.
	// Acquisition is bounded by the configured acquire timeout; a pool
	// that cannot supply a connection in time yields a
	// errs.ResourceUnavailableError.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases the leased
	// connection. Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases the leased
	// connection. Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// RoleRepository returns a RoleRepository bound to the current transaction.
	RoleRepository() RoleRepository

	// CandidateRepository returns a CandidateRepository bound to the current transaction.
	CandidateRepository() CandidateRepository

	// InterviewRepository returns an InterviewRepository bound to the current transaction.
	InterviewRepository() InterviewRepository

	// OfferRepository returns an OfferRepository bound to the current transaction.
	OfferRepository() OfferRepository
}
