package commands

import (
	"errors"
	"strings"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var (
	ErrCreateCandidateCommandIsNotConstructed = errors.New(
		"CreateCandidateCommand must be created via NewCreateCandidateCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
	ErrEmailIsInvalid = errors.New("email must contain @")
)

// CreateCandidateCommand represents a request to attach a new applicant to
// an open role. The generated CandidateID can be read back after
// construction so callers can return it to the client.
type CreateCandidateCommand struct { //nolint:recvcheck //using for validation
	candidateID kernel.UUID
	roleID      kernel.UUID
	name        string
	email       string

	guard guard.ConstructorGuard
}

// NewCreateCandidateCommand creates a command to register a new candidate
// for the given role. Automatically generates a unique candidate ID.
func NewCreateCandidateCommand(roleID kernel.UUID, name, email string) (CreateCandidateCommand, error) {
	command := CreateCandidateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCandidateID(kernel.NewUUID()),
		command.setRoleID(roleID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateCandidateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCandidateCommand) Validate() error {
	return c.guard.Validate(ErrCreateCandidateCommandIsNotConstructed)
}

// CandidateID returns the generated candidate ID.
func (c CreateCandidateCommand) CandidateID() kernel.UUID {
	return c.candidateID
}

// RoleID returns the role applied for.
func (c CreateCandidateCommand) RoleID() kernel.UUID {
	return c.roleID
}

// Name returns the candidate's full name.
func (c CreateCandidateCommand) Name() string {
	return c.name
}

// Email returns the candidate's contact email.
func (c CreateCandidateCommand) Email() string {
	return c.email
}

func (c *CreateCandidateCommand) setCandidateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.candidateID = id
	return nil
}

func (c *CreateCandidateCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}

func (c *CreateCandidateCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCandidateCommand) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}
