package queries

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var ErrGetPipelineAnalyticsQueryIsNotConstructed = errors.New(
	"GetPipelineAnalyticsQuery must be created via NewGetPipelineAnalyticsQuery constructor",
)

// GetPipelineAnalyticsQuery computes hiring funnel metrics, optionally
// scoped to one role. Pass a nil role ID for company-wide numbers.
type GetPipelineAnalyticsQuery struct {
	roleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPipelineAnalyticsQuery creates an analytics query.
func NewGetPipelineAnalyticsQuery(roleID *kernel.UUID) (GetPipelineAnalyticsQuery, error) {
	if roleID != nil {
		if err := roleID.Validate(); err != nil {
			return GetPipelineAnalyticsQuery{}, err
		}
	}

	return GetPipelineAnalyticsQuery{
		roleID: roleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPipelineAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineAnalyticsQueryIsNotConstructed)
}

// RoleID returns the role scope, or nil for company-wide analytics.
func (q GetPipelineAnalyticsQuery) RoleID() *kernel.UUID {
	return q.roleID
}

// StageCount is the number of candidates currently at one pipeline stage.
type StageCount struct {
	Stage string
	Count int
}

// ConversionRate is the fraction of candidates who reached one stage and
// then reached the next one. Rate is in [0, 1].
type ConversionRate struct {
	From string
	To   string
	Rate float64
}

// GetPipelineAnalyticsQueryResponse is the hiring funnel read model.
// Conversions cover the happy path only; candidates currently rejected or
// withdrawn are excluded from the conversion denominators because their
// last active stage is not recorded.
type GetPipelineAnalyticsQueryResponse struct {
	TotalCandidates int
	StageCounts     []StageCount
	Conversions     []ConversionRate
}
