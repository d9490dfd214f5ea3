package ports

import (
	"context"

	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
)

// CandidateRepository persists candidate aggregates.
type CandidateRepository interface {
	// Add saves a new candidate.
	Add(ctx context.Context, aggregate *candidate.Candidate) error

	// Update saves an existing candidate.
	Update(ctx context.Context, aggregate *candidate.Candidate) error

	// Get loads a candidate by its identifier.
	// Returns errs.ObjectNotFoundError when no candidate exists.
	Get(ctx context.Context, id kernel.UUID) (*candidate.Candidate, error)
}
