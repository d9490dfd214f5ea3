package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
)

// CloseRoleCommandHandler finishes hiring for a role. Only Open roles can
// be closed.
type CloseRoleCommandHandler struct {
	uowFactory RoleUoWFactory
}

// NewCloseRoleCommandHandler creates a handler for closing roles.
func NewCloseRoleCommandHandler(uowFactory RoleUoWFactory) CloseRoleCommandHandler {
	return CloseRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the role, transitions it to Closed, and persists the change.
func (h *CloseRoleCommandHandler) Handle(ctx context.Context, cmd CloseRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow RoleUoW) error {
		roleRepo := uow.RoleRepository()

		roleEntity, err := roleRepo.Get(ctx, cmd.RoleID())
		if err != nil {
			return err
		}

		if err = roleEntity.Close(); err != nil {
			return err
		}

		return roleRepo.Update(ctx, roleEntity)
	})
}
