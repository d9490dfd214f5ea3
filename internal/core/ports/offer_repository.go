package ports

import (
	"context"
	"time"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/offer"
)

// OfferRepository persists offer aggregates.
type OfferRepository interface {
	// Add saves a new offer.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update saves an existing offer.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get loads an offer by its identifier.
	// Returns errs.ObjectNotFoundError when no offer exists.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllOverdue loads offers still in Sent status whose deadline is
	// before now. Used by the offer-expiry job.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*offer.Offer, error)
}
