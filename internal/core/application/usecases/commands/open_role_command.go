package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrOpenRoleCommandIsNotConstructed = errors.New(
	"OpenRoleCommand must be created via NewOpenRoleCommand constructor",
)

// OpenRoleCommand represents a request to publish a Draft role so it
// starts accepting candidates.
type OpenRoleCommand struct { //nolint:recvcheck //using for validation
	roleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenRoleCommand creates a command to open an existing role.
func NewOpenRoleCommand(roleID kernel.UUID) (OpenRoleCommand, error) {
	command := OpenRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRoleID(roleID); err != nil {
		return OpenRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenRoleCommand) Validate() error {
	return c.guard.Validate(ErrOpenRoleCommandIsNotConstructed)
}

// RoleID returns the role to open.
func (c OpenRoleCommand) RoleID() kernel.UUID {
	return c.roleID
}

func (c *OpenRoleCommand) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}
