package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
)

// ListCandidatesQueryHandler retrieves candidate pages from the database.
type ListCandidatesQueryHandler struct {
	db *gorm.DB
}

// NewListCandidatesQueryHandler creates a handler for candidate list queries.
func NewListCandidatesQueryHandler(db *gorm.DB) ListCandidatesQueryHandler {
	return ListCandidatesQueryHandler{db: db}
}

// Handle executes the query and returns a page of candidates sorted by name.
func (h ListCandidatesQueryHandler) Handle(
	ctx context.Context,
	query ListCandidatesQuery,
) ([]ListCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			role_id,
			name,
			email,
			stage
		FROM candidates
		WHERE 1=1
	`
	args := make([]any, 0, 4)
	if query.RoleID() != nil {
		sql += " AND role_id = ?"
		args = append(args, query.RoleID().String())
	}
	if query.Stage() != nil {
		sql += " AND stage = ?"
		args = append(args, int(*query.Stage()))
	}
	sql += " ORDER BY name LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	candidates := make([]ListCandidatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidateResp ListCandidatesQueryResponse
		var id, roleID uuid.UUID
		var stage int

		err = rows.Scan(
			&id,
			&roleID,
			&candidateResp.Name,
			&candidateResp.Email,
			&stage,
		)
		if err != nil {
			return nil, err
		}

		candidateID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidateRoleID, idErr := kernel.UUIDFromBytes(roleID[:])
		if idErr != nil {
			return nil, idErr
		}

		candidateResp.ID = candidateID
		candidateResp.RoleID = candidateRoleID
		candidateResp.Stage = candidate.Stage(stage).String()
		candidates = append(candidates, candidateResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
