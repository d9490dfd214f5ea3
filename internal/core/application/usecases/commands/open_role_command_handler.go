package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// OpenRoleCommandHandler publishes a role. Only Draft roles can be opened;
// the status machine rejects anything else.
type OpenRoleCommandHandler struct {
	uowFactory RoleUoWFactory
}

// NewOpenRoleCommandHandler creates a handler for publishing roles.
func NewOpenRoleCommandHandler(uowFactory RoleUoWFactory) OpenRoleCommandHandler {
	return OpenRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the role, transitions it to Open, and persists the change.
func (h *OpenRoleCommandHandler) Handle(ctx context.Context, cmd OpenRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow RoleUoW) error {
		roleRepo := uow.RoleRepository()

		roleEntity, err := roleRepo.Get(ctx, cmd.RoleID())
		if err != nil {
			return err
		}

		if err = roleEntity.Open(); err != nil {
			return err
		}

		return roleRepo.Update(ctx, roleEntity)
	})
}
