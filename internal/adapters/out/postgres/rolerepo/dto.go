// Package rolerepo persists role aggregates, handling the conversion
// between domain entities and their database representation.
package rolerepo

import (
	"github.com/google/uuid"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
)

// RoleDTO represents the database structure for persisting role aggregates.
type RoleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Department string    `gorm:"type:varchar(255);not null"`
	Level      string    `gorm:"type:varchar(64)"`
	Status     int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "roles".
func (RoleDTO) TableName() string {
	return "roles"
}

func fromDomain(aggregate *role.Role) RoleDTO {
	return RoleDTO{
		ID:         aggregate.ID().Bytes(),
		Title:      aggregate.Title(),
		Department: aggregate.Department(),
		Level:      aggregate.Level(),
		Status:     int(aggregate.Status()),
	}
}

func toDomain(dto RoleDTO) (*role.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return role.RestoreRole(id, dto.Title, dto.Department, dto.Level, role.Status(dto.Status))
}
