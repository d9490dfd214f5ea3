package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
	"hireflow/internal/core/domain/model/offer"
)

// ExtendOfferCommandHandler extends a compensation offer to a candidate.
// Extending is a cross-aggregate operation: the offer is created and sent,
// and the candidate moves to Offered in the same transaction. Only
// Interviewing candidates can receive offers.
type ExtendOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewExtendOfferCommandHandler creates a handler for extending offers.
func NewExtendOfferCommandHandler(uowFactory OfferUoWFactory) ExtendOfferCommandHandler {
	return ExtendOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the candidate to Offered, creates the offer, sends it, and
// persists both aggregates atomically.
func (h *ExtendOfferCommandHandler) Handle(ctx context.Context, cmd ExtendOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow OfferUoW) error {
		candidateRepo := uow.CandidateRepository()

		candidateEntity, err := candidateRepo.Get(ctx, cmd.CandidateID())
		if err != nil {
			return err
		}

		if err = candidateEntity.ReceiveOffer(); err != nil {
			return err
		}

		offerEntity, err := offer.NewOffer(cmd.OfferID(), cmd.CandidateID(),
			candidateEntity.RoleID(), cmd.Amount(), cmd.Currency(), cmd.ExpiresAt())
		if err != nil {
			return err
		}

		if err = offerEntity.Send(); err != nil {
			return err
		}

		if err = uow.OfferRepository().Add(ctx, offerEntity); err != nil {
			return err
		}

		return candidateRepo.Update(ctx, candidateEntity)
	})
}
