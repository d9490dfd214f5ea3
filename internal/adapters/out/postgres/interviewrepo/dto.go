// Package interviewrepo persists interview aggregates, handling the
// conversion between domain entities and their database representation.
package interviewrepo

import (
	"time"

	"github.com/google/uuid"

	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
)

// InterviewDTO represents the database structure for persisting interview aggregates.
type InterviewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(32);not null"`
	ScheduledAt time.Time `gorm:"not null"`
	Status      int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "interviews".
func (InterviewDTO) TableName() string {
	return "interviews"
}

func fromDomain(aggregate *interview.Interview) InterviewDTO {
	return InterviewDTO{
		ID:          aggregate.ID().Bytes(),
		CandidateID: aggregate.CandidateID().Bytes(),
		Kind:        string(aggregate.Kind()),
		ScheduledAt: aggregate.ScheduledAt(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto InterviewDTO) (*interview.Interview, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	candidateID, err := kernel.UUIDFromBytes(dto.CandidateID[:])
	if err != nil {
		return nil, err
	}

	return interview.RestoreInterview(id, candidateID,
		interview.Kind(dto.Kind), dto.ScheduledAt, interview.Status(dto.Status))
}
