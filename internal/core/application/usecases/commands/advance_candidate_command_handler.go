package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// AdvanceCandidateCommandHandler moves a candidate one stage forward along
// the happy path. The stage machine rejects advancing terminal candidates.
type AdvanceCandidateCommandHandler struct {
	uowFactory CandidateUoWFactory
}

// NewAdvanceCandidateCommandHandler creates a handler for advancing candidates.
func NewAdvanceCandidateCommandHandler(uowFactory CandidateUoWFactory) AdvanceCandidateCommandHandler {
	return AdvanceCandidateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the candidate, advances its stage, and persists the change.
func (h *AdvanceCandidateCommandHandler) Handle(ctx context.Context, cmd AdvanceCandidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow CandidateUoW) error {
		candidateRepo := uow.CandidateRepository()

		candidateEntity, err := candidateRepo.Get(ctx, cmd.CandidateID())
		if err != nil {
			return err
		}

		if err = candidateEntity.Advance(); err != nil {
			return err
		}

		return candidateRepo.Update(ctx, candidateEntity)
	})
}
