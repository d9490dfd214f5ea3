package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrCloseRoleCommandIsNotConstructed = errors.New(
	"CloseRoleCommand must be created via NewCloseRoleCommand constructor",
)

// CloseRoleCommand represents a request to finish hiring for a role.
type CloseRoleCommand struct { //nolint:recvcheck //using for validation
	roleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseRoleCommand creates a command to close an existing role.
func NewCloseRoleCommand(roleID kernel.UUID) (CloseRoleCommand, error) {
	command := CloseRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRoleID(roleID); err != nil {
		return CloseRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseRoleCommand) Validate() error {
	return c.guard.Validate(ErrCloseRoleCommandIsNotConstructed)
}

// RoleID returns the role to close.
func (c CloseRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

func (c *CloseRoleCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}
