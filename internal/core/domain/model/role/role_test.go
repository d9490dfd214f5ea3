package role_test

import (
	"testing"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	t.Run("creates draft role", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := role.NewRole(id, "Backend Engineer", "Engineering", "senior")

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Backend Engineer", r.Title())
		assert.Equal(t, "Engineering", r.Department())
		assert.Equal(t, "senior", r.Level())
		assert.Equal(t, role.Draft, r.Status())
		require.NoError(t, r.Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		_, err := role.NewRole(kernel.NewUUID(), "", "Engineering", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires department", func(t *testing.T) {
		_, err := role.NewRole(kernel.NewUUID(), "Backend Engineer", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires valid id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := role.NewRole(zero, "Backend Engineer", "Engineering", "")
		assert.Error(t, err)
	})
}

func TestRoleLifecycle(t *testing.T) {
	newDraftRole := func(t *testing.T) *role.Role {
		t.Helper()
		r, err := role.NewRole(kernel.NewUUID(), "Backend Engineer", "Engineering", "senior")
		require.NoError(t, err)
		return r
	}

	t.Run("open then close", func(t *testing.T) {
		r := newDraftRole(t)

		require.NoError(t, r.Open())
		assert.Equal(t, role.Open, r.Status())

		require.NoError(t, r.Close())
		assert.Equal(t, role.Closed, r.Status())
	})

	t.Run("cannot close draft", func(t *testing.T) {
		r := newDraftRole(t)
		assert.Error(t, r.Close())
	})

	t.Run("cannot reopen closed", func(t *testing.T) {
		r := newDraftRole(t)
		require.NoError(t, r.Open())
		require.NoError(t, r.Close())

		assert.Error(t, r.Open())
	})

	t.Run("only open accepts candidates", func(t *testing.T) {
		r := newDraftRole(t)
		assert.Error(t, r.Status().ValidateAcceptsCandidates())

		require.NoError(t, r.Open())
		assert.NoError(t, r.Status().ValidateAcceptsCandidates())
	})
}

func TestRestoreRole(t *testing.T) {
	t.Run("restores persisted status", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := role.RestoreRole(id, "Data Analyst", "Analytics", "mid", role.Open)

		require.NoError(t, err)
		assert.Equal(t, role.Open, r.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := role.RestoreRole(kernel.NewUUID(), "Data Analyst", "Analytics", "", role.Status(42))
		assert.Error(t, err)
	})
}

func TestRoleValidate(t *testing.T) {
	var r *role.Role
	assert.ErrorIs(t, r.Validate(), role.ErrRoleIsNotConstructed)

	assert.ErrorIs(t, (&role.Role{}).Validate(), role.ErrRoleIsNotConstructed)
}
