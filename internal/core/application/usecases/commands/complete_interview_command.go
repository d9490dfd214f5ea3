package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrCompleteInterviewCommandIsNotConstructed = errors.New(
	"CompleteInterviewCommand must be created via NewCompleteInterviewCommand constructor",
)

// CompleteInterviewCommand represents a request to record that a scheduled
// interview took place.
type CompleteInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteInterviewCommand creates a command to complete an interview.
func NewCompleteInterviewCommand(interviewID kernel.UUID) (CompleteInterviewCommand, error) {
	command := CompleteInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setInterviewID(interviewID); err != nil {
		return CompleteInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInterviewCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview to complete.
func (c CompleteInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

func (c *CompleteInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}

	c.interviewID = interviewID
	return nil
}
