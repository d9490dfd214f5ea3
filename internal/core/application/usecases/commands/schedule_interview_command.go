package commands

import (
	"errors"
	"time"

	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var (
	ErrScheduleInterviewCommandIsNotConstructed = errors.New(
		"ScheduleInterviewCommand must be created via NewScheduleInterviewCommand constructor",
	)
	ErrScheduledAtIsRequired = errors.New("scheduledAt is required")
)

// ScheduleInterviewCommand represents a request to book an interview for a
// candidate. The generated InterviewID can be read back after construction.
type ScheduleInterviewCommand struct { //nolint:recvcheck //using for validation
	interviewID kernel.UUID
	candidateID kernel.UUID
	kind        interview.Kind
	scheduledAt time.Time

	guard guard.ConstructorGuard
}

// NewScheduleInterviewCommand creates a command to book an interview.
// Automatically generates a unique interview ID.
func NewScheduleInterviewCommand(
	candidateID kernel.UUID, kind interview.Kind, scheduledAt time.Time,
) (ScheduleInterviewCommand, error) {
	command := ScheduleInterviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInterviewID(kernel.NewUUID()),
		command.setCandidateID(candidateID),
		command.setKind(kind),
		command.setScheduledAt(scheduledAt),
	); err != nil {
		return ScheduleInterviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleInterviewCommand) Validate() error {
	return c.guard.Validate(ErrScheduleInterviewCommandIsNotConstructed)
}

// InterviewID returns the generated interview ID.
func (c ScheduleInterviewCommand) InterviewID() kernel.UUID {
	return c.interviewID
}

// CandidateID returns the candidate being interviewed.
func (c ScheduleInterviewCommand) CandidateID() kernel.UUID {
	return c.candidateID
}

// Kind returns the interview classification.
func (c ScheduleInterviewCommand) Kind() interview.Kind {
	return c.kind
}

// ScheduledAt returns the booked time.
func (c ScheduleInterviewCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

func (c *ScheduleInterviewCommand) setInterviewID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.interviewID = id
	return nil
}

func (c *ScheduleInterviewCommand) setCandidateID(candidateID kernel.UUID) error {
	if err := candidateID.Validate(); err != nil {
		return err
	}

	c.candidateID = candidateID
	return nil
}

func (c *ScheduleInterviewCommand) setKind(kind interview.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *ScheduleInterviewCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}

	c.scheduledAt = scheduledAt
	return nil
}
