package ports

import (
	"context"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
)

// RoleRepository persists role aggregates.
type RoleRepository interface {
	// Add saves a new role.
	Add(ctx context.Context, aggregate *role.Role) error

	// Update saves an existing role.
	Update(ctx context.Context, aggregate *role.Role) error

	// Get loads a role by its identifier.
	// Returns errs.ObjectNotFoundError when no role exists.
	Get(ctx context.Context, id kernel.UUID) (*role.Role, error)
}
