package interview_test

import (
	"testing"
	"time"

	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduled(t *testing.T) *interview.Interview {
	t.Helper()
	iv, err := interview.NewInterview(
		kernel.NewUUID(), kernel.NewUUID(), interview.Technical,
		time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return iv
}

func TestNewInterview(t *testing.T) {
	t.Run("creates scheduled interview", func(t *testing.T) {
		iv := newScheduled(t)

		assert.Equal(t, interview.Scheduled, iv.Status())
		assert.Equal(t, interview.Technical, iv.Kind())
		require.NoError(t, iv.Validate())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := interview.NewInterview(
			kernel.NewUUID(), kernel.NewUUID(), interview.Kind("casual_chat"), time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires scheduled time", func(t *testing.T) {
		_, err := interview.NewInterview(
			kernel.NewUUID(), kernel.NewUUID(), interview.Final, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInterviewLifecycle(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		iv := newScheduled(t)

		require.NoError(t, iv.Complete())
		assert.Equal(t, interview.Completed, iv.Status())
		assert.Error(t, iv.Complete())
		assert.Error(t, iv.Cancel())
	})

	t.Run("cancel", func(t *testing.T) {
		iv := newScheduled(t)

		require.NoError(t, iv.Cancel())
		assert.Equal(t, interview.Canceled, iv.Status())
		assert.Error(t, iv.Complete())
	})
}

func TestKindValidate(t *testing.T) {
	valid := []interview.Kind{
		interview.PhoneScreen, interview.Technical, interview.Behavioral,
		interview.Cultural, interview.Final, interview.Reference,
	}
	for _, k := range valid {
		assert.NoError(t, k.Validate(), string(k))
	}

	assert.Error(t, interview.Kind("").Validate())
}

func TestRestoreInterview(t *testing.T) {
	iv, err := interview.RestoreInterview(
		kernel.NewUUID(), kernel.NewUUID(), interview.Behavioral,
		time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), interview.Completed)

	require.NoError(t, err)
	assert.Equal(t, interview.Completed, iv.Status())

	_, err = interview.RestoreInterview(
		kernel.NewUUID(), kernel.NewUUID(), interview.Behavioral,
		time.Now(), interview.Status(7))
	assert.Error(t, err)
}
