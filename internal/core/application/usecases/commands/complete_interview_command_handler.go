package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// CompleteInterviewCommandHandler records that a scheduled interview took
// place. Only Scheduled interviews can be completed; the status machine
// rejects anything else.
type CompleteInterviewCommandHandler struct {
	uowFactory InterviewUoWFactory
}

// NewCompleteInterviewCommandHandler creates a handler for completing interviews.
func NewCompleteInterviewCommandHandler(uowFactory InterviewUoWFactory) CompleteInterviewCommandHandler {
	return CompleteInterviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the interview, marks it completed, and persists the change.
func (h *CompleteInterviewCommandHandler) Handle(ctx context.Context, cmd CompleteInterviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow InterviewUoW) error {
		interviewRepo := uow.InterviewRepository()

		interviewEntity, err := interviewRepo.Get(ctx, cmd.InterviewID())
		if err != nil {
			return err
		}

		if err = interviewEntity.Complete(); err != nil {
			return err
		}

		return interviewRepo.Update(ctx, interviewEntity)
	})
}
