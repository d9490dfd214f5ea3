package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrCancelInterviewCommandIsNotConstructed = errors.New(
	"CancelInterviewCommand must be created via NewCancelInterviewCommand constructor",
)

// CancelInterviewCommand represents a request to call off a scheduled
// interview.
type CancelInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelInterviewCommand creates a command to cancel an interview.
func NewCancelInterviewCommand(interviewID kernel.UUID) (CancelInterviewCommand, error) {
	command := CancelInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setInterviewID(interviewID); err != nil {
		return CancelInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelInterviewCommand) Validate() error {
	return c.guard.Validate(ErrCancelInterviewCommandIsNotConstructed)
}

// InterviewID returns the interview to cancel.
func (c CancelInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

func (c *CancelInterviewCommand) setInterviewID(interviewID kernel.UUID) error {
	if err := interviewID.Validate(); err != nil {
		return err
	}

	c.interviewID = interviewID
	return nil
}
