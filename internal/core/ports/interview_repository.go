package ports

import (
	"context"

	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
)

// InterviewRepository persists interview aggregates.
type InterviewRepository interface {
	// Add saves a new interview.
	Add(ctx context.Context, aggregate *interview.Interview) error

	// Update saves an existing interview.
	Update(ctx context.Context, aggregate *interview.Interview) error

	// Get loads an interview by its identifier.
	// Returns errs.ObjectNotFoundError when no interview exists.
	Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error)
}
