// Package candidaterepo persists candidate aggregates, handling the
// conversion between domain entities and their database representation.
package candidaterepo

import (
	"github.com/google/uuid"

	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
)

// CandidateDTO represents the database structure for persisting candidate aggregates.
type CandidateDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Email  string    `gorm:"type:varchar(255);not null"`
	Stage  int       `gorm:"type:int;not null;index"`
}

// TableName overrides GORM's default naming to use "candidates".
func (CandidateDTO) TableName() string {
	return "candidates"
}

func fromDomain(aggregate *candidate.Candidate) CandidateDTO {
	return CandidateDTO{
		ID:     aggregate.ID().Bytes(),
		RoleID: aggregate.RoleID().Bytes(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Stage:  int(aggregate.Stage()),
	}
}

func toDomain(dto CandidateDTO) (*candidate.Candidate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roleID, err := kernel.UUIDFromBytes(dto.RoleID[:])
	if err != nil {
		return nil, err
	}

	return candidate.RestoreCandidate(id, roleID, dto.Name, dto.Email, candidate.Stage(dto.Stage))
}
