package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// ExpireOffersCommandHandler expires all sent offers whose deadline has
// passed. The whole batch runs in one transaction, so HandleWithRetry can
// safely rerun it: a failed attempt leaves nothing half-expired.
type ExpireOffersCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewExpireOffersCommandHandler creates a handler for the expiry batch.
func NewExpireOffersCommandHandler(uowFactory OfferUoWFactory) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads all overdue offers, expires each, and persists the changes.
func (h *ExpireOffersCommandHandler) Handle(ctx context.Context, cmd ExpireOffersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, h.expireOverdue(cmd))
}

// HandleWithRetry runs the expiry batch under the retry executor. Used by
// the scheduled job, where a transient database failure should not skip a
// whole expiry cycle.
func (h *ExpireOffersCommandHandler) HandleWithRetry(
	ctx context.Context, cmd ExpireOffersCommand, policy txn.RetryPolicy,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.ExecuteWithRetry(ctx, h.uowFactory, h.expireOverdue(cmd), policy)
}

func (h *ExpireOffersCommandHandler) expireOverdue(cmd ExpireOffersCommand) txn.Work[OfferUoW] {
	return func(ctx context.Context, uow OfferUoW) error {
		offerRepo := uow.OfferRepository()

		overdueOffers, err := offerRepo.GetAllOverdue(ctx, cmd.Now())
		if err != nil {
			return err
		}

		for _, offerEntity := range overdueOffers {
			if err = offerEntity.Expire(); err != nil {
				return err
			}

			if err = offerRepo.Update(ctx, offerEntity); err != nil {
				return err
			}
		}

		return nil
	}
}
