// Package offerrepo persists offer aggregates, handling the conversion
// between domain entities and their database representation.
package offerrepo

import (
	"time"

	"github.com/google/uuid"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/offer"
)

// OfferDTO represents the database structure for persisting offer aggregates.
type OfferDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      int64     `gorm:"type:bigint;not null"`
	Currency    string    `gorm:"type:varchar(8);not null"`
	Status      int       `gorm:"type:int;not null;index"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:          aggregate.ID().Bytes(),
		CandidateID: aggregate.CandidateID().Bytes(),
		RoleID:      aggregate.RoleID().Bytes(),
		Amount:      aggregate.Amount(),
		Currency:    aggregate.Currency(),
		Status:      int(aggregate.Status()),
		ExpiresAt:   aggregate.ExpiresAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	candidateID, err := kernel.UUIDFromBytes(dto.CandidateID[:])
	if err != nil {
		return nil, err
	}

	roleID, err := kernel.UUIDFromBytes(dto.RoleID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, candidateID, roleID,
		dto.Amount, dto.Currency, offer.Status(dto.Status), dto.ExpiresAt)
}
