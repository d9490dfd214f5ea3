package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrAdvanceCandidateCommandIsNotConstructed = errors.New(
	"AdvanceCandidateCommand must be created via NewAdvanceCandidateCommand constructor",
)

// AdvanceCandidateCommand represents a request to move a candidate one step
// forward along the hiring pipeline.
type AdvanceCandidateCommand struct { //nolint:recvcheck //using for validation
	candidateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceCandidateCommand creates a command to advance a candidate.
func NewAdvanceCandidateCommand(candidateID kernel.UUID) (AdvanceCandidateCommand, error) {
	command := AdvanceCandidateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCandidateID(candidateID); err != nil {
		return AdvanceCandidateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceCandidateCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCandidateCommandIsNotConstructed)
}

// CandidateID returns the candidate to advance.
func (c AdvanceCandidateCommand) CandidateID() kernel.UUID {
	return c.candidateID
}

func (c *AdvanceCandidateCommand) setCandidateID(candidateID kernel.UUID) error {
	if err := candidateID.Validate(); err != nil {
		return err
	}

	c.candidateID = candidateID
	return nil
}
