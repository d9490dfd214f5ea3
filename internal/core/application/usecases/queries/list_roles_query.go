// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read directly from the database,
// returning read models shaped for their callers.
package queries

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/pkg/guard"
)

// Pagination bounds shared by the list queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var (
	ErrListRolesQueryIsNotConstructed = errors.New(
		"ListRolesQuery must be created via NewListRolesQuery constructor",
	)
	ErrLimitIsInvalid  = errors.New("limit must be between 1 and 100")
	ErrOffsetIsInvalid = errors.New("offset must not be negative")
)

// ListRolesQuery retrieves a page of job roles, optionally filtered by
// lifecycle status. Pass a nil status to list roles in every status.
type ListRolesQuery struct {
	status *role.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListRolesQuery creates a query for a page of roles. A limit of 0
// selects DefaultPageSize.
func NewListRolesQuery(status *role.Status, limit, offset int) (ListRolesQuery, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 0 || limit > MaxPageSize {
		return ListRolesQuery{}, ErrLimitIsInvalid
	}
	if offset < 0 {
		return ListRolesQuery{}, ErrOffsetIsInvalid
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListRolesQuery{}, err
		}
	}

	return ListRolesQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRolesQuery) Validate() error {
	return q.guard.Validate(ErrListRolesQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q ListRolesQuery) Status() *role.Status {
	return q.status
}

// Limit returns the page size.
func (q ListRolesQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q ListRolesQuery) Offset() int {
	return q.offset
}

// ListRolesQueryResponse represents one role in the read model.
type ListRolesQueryResponse struct {
	ID         kernel.UUID
	Title      string
	Department string
	Level      string
	Status     string
}
