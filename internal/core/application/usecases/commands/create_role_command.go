package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var (
	ErrCreateRoleCommandIsNotConstructed = errors.New(
		"CreateRoleCommand must be created via NewCreateRoleCommand constructor",
	)
	ErrTitleIsRequired      = errors.New("title is required")
	ErrDepartmentIsRequired = errors.New("department is required")
)

// CreateRoleCommand represents a request to open a new job role in Draft
// status. The generated RoleID can be read back after construction so
// callers can return it to the client.
type CreateRoleCommand struct { //nolint:recvcheck //using for validation
	roleID     kernel.UUID
	title      string
	department string
	level      string

	guard guard.ConstructorGuard
}

// NewCreateRoleCommand creates a command to register a new role.
// Automatically generates a unique ID. Level may be empty.
func NewCreateRoleCommand(title, department, level string) (CreateRoleCommand, error) {
	command := CreateRoleCommand{
		level: level,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRoleID(kernel.NewUUID()),
		command.setTitle(title),
		command.setDepartment(department),
	); err != nil {
		return CreateRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRoleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoleCommandIsNotConstructed)
}

// RoleID returns the generated role ID.
func (c CreateRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

// Title returns the position title.
func (c CreateRoleCommand) Title() string {
	return c.title
}

// Department returns the owning department.
func (c CreateRoleCommand) Department() string {
	return c.department
}

// Level returns the seniority level.
func (c CreateRoleCommand) Level() string {
	return c.level
}

func (c *CreateRoleCommand) setRoleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.roleID = id
	return nil
}

func (c *CreateRoleCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateRoleCommand) setDepartment(department string) error {
	if department == "" {
		return ErrDepartmentIsRequired
	}

	c.department = department
	return nil
}
