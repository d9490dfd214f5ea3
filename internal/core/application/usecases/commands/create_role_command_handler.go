package commands

import (
	"context"

	"hireflow/internal/core/application/txn"
	"hireflow/internal/core/domain/model/role"
)

// CreateRoleCommandHandler handles registration of new job roles.
// New roles start in Draft status and must be opened before they
// accept candidates.
type CreateRoleCommandHandler struct {
	uowFactory RoleUoWFactory
}

// NewCreateRoleCommandHandler creates a handler for role registration.
func NewCreateRoleCommandHandler(uowFactory RoleUoWFactory) CreateRoleCommandHandler {
	return CreateRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a new role entity and persists it within a transaction.
func (h *CreateRoleCommandHandler) Handle(ctx context.Context, cmd CreateRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return txn.Execute(ctx, h.uowFactory, func(ctx context.Context, uow RoleUoW) error {
		roleEntity, err := role.NewRole(cmd.RoleID(), cmd.Title(), cmd.Department(), cmd.Level())
		if err != nil {
			return err
		}

		return uow.RoleRepository().Add(ctx, roleEntity)
	})
}
