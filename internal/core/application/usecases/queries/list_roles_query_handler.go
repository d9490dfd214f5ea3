package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
)

// ListRolesQueryHandler retrieves role pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListRolesQueryHandler struct {
	db *gorm.DB
}

// NewListRolesQueryHandler creates a handler for role list queries.
func NewListRolesQueryHandler(db *gorm.DB) ListRolesQueryHandler {
	return ListRolesQueryHandler{db: db}
}

// Handle executes the query and returns a page of roles sorted by title.
func (h ListRolesQueryHandler) Handle(
	ctx context.Context,
	query ListRolesQuery,
) ([]ListRolesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			title,
			department,
			level,
			status
		FROM roles
	`
	args := make([]any, 0, 3)
	if query.Status() != nil {
		sql += " WHERE status = ?"
		args = append(args, int(*query.Status()))
	}
	sql += " ORDER BY title LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	roles := make([]ListRolesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var roleResp ListRolesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&roleResp.Title,
			&roleResp.Department,
			&roleResp.Level,
			&status,
		)
		if err != nil {
			return nil, err
		}

		roleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		roleResp.ID = roleID
		roleResp.Status = role.Status(status).String()
		roles = append(roles, roleResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
