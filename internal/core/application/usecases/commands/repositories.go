// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transactional execution
// through the txn package, and persistence.
package commands

import (
	"context"

	"hireflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RoleRepoFactory provides access to the role repository within a transaction.
	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// CandidateRepoFactory provides access to the candidate repository within a transaction.
	CandidateRepoFactory interface {
		CandidateRepository() ports.CandidateRepository
	}

	// InterviewRepoFactory provides access to the interview repository within a transaction.
	InterviewRepoFactory interface {
		InterviewRepository() ports.InterviewRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// RoleUoW manages transactions for role-only operations.
	RoleUoW interface {
		TxManager
		RoleRepoFactory
	}

	// RoleUoWFactory creates new role unit of work instances.
	RoleUoWFactory interface {
		Create() RoleUoW
	}

	// CandidateUoW manages transactions for operations that touch candidates
	// and need to consult the owning role.
	CandidateUoW interface {
		TxManager
		RoleRepoFactory
		CandidateRepoFactory
	}

	// CandidateUoWFactory creates new candidate unit of work instances.
	CandidateUoWFactory interface {
		Create() CandidateUoW
	}

	// InterviewUoW manages transactions spanning interview and candidate
	// aggregates. Scheduling an interview also moves the candidate's stage.
	InterviewUoW interface {
		TxManager
		CandidateRepoFactory
		InterviewRepoFactory
	}

	// InterviewUoWFactory creates new interview unit of work instances.
	InterviewUoWFactory interface {
		Create() InterviewUoW
	}

	// OfferUoW manages transactions spanning offer and candidate aggregates.
	// Extending an offer also moves the candidate's stage.
	OfferUoW interface {
		TxManager
		CandidateRepoFactory
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}
)
