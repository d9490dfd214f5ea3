package queries

import (
	"errors"

	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrListCandidatesQueryIsNotConstructed = errors.New(
	"ListCandidatesQuery must be created via NewListCandidatesQuery constructor",
)

// ListCandidatesQuery retrieves a page of candidates, optionally filtered
// by role and by pipeline stage. Pass nil filters to list everything.
type ListCandidatesQuery struct {
	roleID *kernel.UUID
	stage  *candidate.Stage
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListCandidatesQuery creates a query for a page of candidates. A limit
// of 0 selects DefaultPageSize.
func NewListCandidatesQuery(
	roleID *kernel.UUID, stage *candidate.Stage, limit, offset int,
) (ListCandidatesQuery, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 0 || limit > MaxPageSize {
		return ListCandidatesQuery{}, ErrLimitIsInvalid
	}
	if offset < 0 {
		return ListCandidatesQuery{}, ErrOffsetIsInvalid
	}
	if roleID != nil {
		if err := roleID.Validate(); err != nil {
			return ListCandidatesQuery{}, err
		}
	}
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return ListCandidatesQuery{}, err
		}
	}

	return ListCandidatesQuery{
		roleID: roleID,
		stage:  stage,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrListCandidatesQueryIsNotConstructed)
}

// RoleID returns the role filter, or nil when unfiltered.
func (q ListCandidatesQuery) RoleID() *kernel.UUID {
	return q.roleID
}

// Stage returns the stage filter, or nil when unfiltered.
func (q ListCandidatesQuery) Stage() *candidate.Stage {
	return q.stage
}

// Limit returns the page size.
func (q ListCandidatesQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q ListCandidatesQuery) Offset() int {
	return q.offset
}

// ListCandidatesQueryResponse represents one candidate in the read model.
type ListCandidatesQueryResponse struct {
	ID     kernel.UUID
	RoleID kernel.UUID
	Name   string
	Email  string
	Stage  string
}
