package candidaterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

// GormCandidateRepository implements CandidateRepository using GORM.
type GormCandidateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCandidateRepository creates a new GORM candidate repository.
func NewGormCandidateRepository(db *gorm.DB, tracker aggregateTracker) *GormCandidateRepository {
	return &GormCandidateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new candidate to the database.
func (r *GormCandidateRepository) Add(ctx context.Context, aggregate *candidate.Candidate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing candidate to the database.
func (r *GormCandidateRepository) Update(ctx context.Context, aggregate *candidate.Candidate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a candidate by ID.
func (r *GormCandidateRepository) Get(ctx context.Context, id kernel.UUID) (*candidate.Candidate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CandidateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("candidate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
