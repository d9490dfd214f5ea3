package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// CancelInterviewCommandHandler calls off a scheduled interview. The
// candidate keeps their Interviewing stage; cancellation only affects the
// interview itself.
type CancelInterviewCommandHandler struct {
	uowFactory InterviewUoWFactory
}

// NewCancelInterviewCommandHandler creates a handler for canceling interviews.
func NewCancelInterviewCommandHandler(uowFactory InterviewUoWFactory) CancelInterviewCommandHandler {
	return CancelInterviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the interview, cancels it, and persists the change.
func (h *CancelInterviewCommandHandler) Handle(ctx context.Context, cmd CancelInterviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow InterviewUoW) error {
		interviewRepo := uow.InterviewRepository()

		interviewEntity, err := interviewRepo.Get(ctx, cmd.InterviewID())
		if err != nil {
			return err
		}

		if err = interviewEntity.Cancel(); err != nil {
			return err
		}

		return interviewRepo.Update(ctx, interviewEntity)
	})
}
