package interviewrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

// GormInterviewRepository implements InterviewRepository using GORM.
type GormInterviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInterviewRepository creates a new GORM interview repository.
func NewGormInterviewRepository(db *gorm.DB, tracker aggregateTracker) *GormInterviewRepository {
	return &GormInterviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new interview to the database.
func (r *GormInterviewRepository) Add(ctx context.Context, aggregate *interview.Interview) error {
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

// Update saves an existing interview to the database.
func (r *GormInterviewRepository) Update(ctx context.Context, aggregate *interview.Interview) error {
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

// Get retrieves an interview by ID.
func (r *GormInterviewRepository) Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InterviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("interview", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
