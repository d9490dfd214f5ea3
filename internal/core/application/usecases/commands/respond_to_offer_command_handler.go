package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// RespondToOfferCommandHandler records the candidate's decision on a sent
// offer. Acceptance also completes the pipeline: the candidate moves from
// Offered to Hired in the same transaction, so an offer can never be
// accepted without the candidate being hired.
type RespondToOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewRespondToOfferCommandHandler creates a handler for offer responses.
func NewRespondToOfferCommandHandler(uowFactory OfferUoWFactory) RespondToOfferCommandHandler {
	return RespondToOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the offer, applies the decision, and on acceptance advances
// the candidate to Hired.
func (h *RespondToOfferCommandHandler) Handle(ctx context.Context, cmd RespondToOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow OfferUoW) error {
		offerRepo := uow.OfferRepository()

		offerEntity, err := offerRepo.Get(ctx, cmd.OfferID())
		if err != nil {
			return err
		}

		if cmd.Accepted() {
			if err = offerEntity.Accept(); err != nil {
				return err
			}

			candidateRepo := uow.CandidateRepository()

			candidateEntity, candidateErr := candidateRepo.Get(ctx, offerEntity.CandidateID())
			if candidateErr != nil {
				return candidateErr
			}

			if err = candidateEntity.Advance(); err != nil {
				return err
			}

			if err = candidateRepo.Update(ctx, candidateEntity); err != nil {
				return err
			}
		} else {
			if err = offerEntity.Decline(); err != nil {
				return err
			}
		}

		return offerRepo.Update(ctx, offerEntity)
	})
}
