package rolerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/pkg/errs"
)

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB, tracker aggregateTracker) *GormRoleRepository {
	return &GormRoleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new role to the database.
func (r *GormRoleRepository) Add(ctx context.Context, aggregate *role.Role) error {
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

// Update saves an existing role to the database.
func (r *GormRoleRepository) Update(ctx context.Context, aggregate *role.Role) error {
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

// Get retrieves a role by ID.
func (r *GormRoleRepository) Get(ctx context.Context, id kernel.UUID) (*role.Role, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
