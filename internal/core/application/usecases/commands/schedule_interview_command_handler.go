package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
	"hireflow/internal/core/domain/model/interview"
)

// ScheduleInterviewCommandHandler books an interview for a candidate.
// Scheduling is a cross-aggregate operation: the interview is created and
// the candidate moves to Interviewing in the same transaction.
type ScheduleInterviewCommandHandler struct {
	uowFactory InterviewUoWFactory
}

// NewScheduleInterviewCommandHandler creates a handler for booking interviews.
func NewScheduleInterviewCommandHandler(uowFactory InterviewUoWFactory) ScheduleInterviewCommandHandler {
	return ScheduleInterviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the candidate can be interviewed, books the interview,
// and moves the candidate to Interviewing atomically.
func (h *ScheduleInterviewCommandHandler) Handle(ctx context.Context, cmd ScheduleInterviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow InterviewUoW) error {
		candidateRepo := uow.CandidateRepository()

		candidateEntity, err := candidateRepo.Get(ctx, cmd.CandidateID())
		if err != nil {
			return err
		}

		if err = candidateEntity.StartInterviewing(); err != nil {
			return err
		}

		interviewEntity, err := interview.NewInterview(
			cmd.InterviewID(), cmd.CandidateID(), cmd.Kind(), cmd.ScheduledAt())
		if err != nil {
			return err
		}

		if err = uow.InterviewRepository().Add(ctx, interviewEntity); err != nil {
			return err
		}

		return candidateRepo.Update(ctx, candidateEntity)
	})
}
