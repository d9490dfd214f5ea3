package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/core/application/usecases/queries"
	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/pkg/errs"
)

func TestNewListRolesQuery_Defaults(t *testing.T) {
	query, err := queries.NewListRolesQuery(nil, 0, 0)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, queries.DefaultPageSize, query.Limit())
	assert.Equal(t, 0, query.Offset())
	assert.Nil(t, query.Status())
}

func TestNewListRolesQuery_WithStatusFilter(t *testing.T) {
	status := role.Open

	query, err := queries.NewListRolesQuery(&status, 10, 20)

	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, role.Open, *query.Status())
	assert.Equal(t, 10, query.Limit())
	assert.Equal(t, 20, query.Offset())
}

func TestNewListRolesQuery_ValidationErrors(t *testing.T) {
	invalidStatus := role.Unknown

	tests := []struct {
		name   string
		status *role.Status
		limit  int
		offset int
	}{
		{"negative limit", nil, -1, 0},
		{"limit over max", nil, queries.MaxPageSize + 1, 0},
		{"negative offset", nil, 10, -1},
		{"invalid status", &invalidStatus, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewListRolesQuery(tt.status, tt.limit, tt.offset)

			require.Error(t, err)
		})
	}
}

func TestListRolesQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.ListRolesQuery

	require.ErrorIs(t, query.Validate(), queries.ErrListRolesQueryIsNotConstructed)
}

func TestNewListCandidatesQuery_WithFilters(t *testing.T) {
	roleID := kernel.NewUUID()
	stage := candidate.Interviewing

	query, err := queries.NewListCandidatesQuery(&roleID, &stage, 5, 0)

	require.NoError(t, err)
	require.NotNil(t, query.RoleID())
	assert.True(t, query.RoleID().IsEqual(roleID))
	require.NotNil(t, query.Stage())
	assert.Equal(t, candidate.Interviewing, *query.Stage())
}

func TestNewListCandidatesQuery_InvalidStage(t *testing.T) {
	stage := candidate.Unknown

	_, err := queries.NewListCandidatesQuery(nil, &stage, 5, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetPipelineAnalyticsQuery_NilRoleIsCompanyWide(t *testing.T) {
	query, err := queries.NewGetPipelineAnalyticsQuery(nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.RoleID())
}
