package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
	"hireflow/internal/core/domain/model/candidate"
)

// CreateCandidateCommandHandler registers a new applicant for a role.
// The role must exist and be Open; Draft and Closed roles reject
// applications.
type CreateCandidateCommandHandler struct {
	uowFactory CandidateUoWFactory
}

// NewCreateCandidateCommandHandler creates a handler for candidate registration.
func NewCreateCandidateCommandHandler(uowFactory CandidateUoWFactory) CreateCandidateCommandHandler {
	return CreateCandidateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the target role accepts candidates, then creates and
// persists the candidate in Applied stage. Both reads and the write run in
// one transaction so a role closing concurrently cannot admit a candidate.
func (h *CreateCandidateCommandHandler) Handle(ctx context.Context, cmd CreateCandidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow CandidateUoW) error {
		roleEntity, err := uow.RoleRepository().Get(ctx, cmd.RoleID())
		if err != nil {
			return err
		}

		if err = roleEntity.Status().ValidateAcceptsCandidates(); err != nil {
			return err
		}

		candidateEntity, err := candidate.NewCandidate(cmd.CandidateID(), cmd.RoleID(), cmd.Name(), cmd.Email())
		if err != nil {
			return err
		}

		return uow.CandidateRepository().Add(ctx, candidateEntity)
	})
}
