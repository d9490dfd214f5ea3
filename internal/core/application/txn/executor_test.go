package txn_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireflow/internal/core/application/txn"
)

type fakeUnitOfWork struct {
	beginCalls    int
	commitCalls   int
	rollbackCalls int

	beginErr  error
	commitErr error
}

func (f *fakeUnitOfWork) Begin(_ context.Context) error {
	f.beginCalls++
	return f.beginErr
}

func (f *fakeUnitOfWork) Commit(_ context.Context) error {
	f.commitCalls++
	return f.commitErr
}

func (f *fakeUnitOfWork) Rollback(_ context.Context) error {
	f.rollbackCalls++
	return nil
}

type fakeFactory struct {
	beginErr  error
	commitErr error

	created []*fakeUnitOfWork
}

func (f *fakeFactory) Create() *fakeUnitOfWork {
	uow := &fakeUnitOfWork{beginErr: f.beginErr, commitErr: f.commitErr}
	f.created = append(f.created, uow)
	return uow
}

func Test_Execute_CommitsOnceWhenWorkSucceeds(t *testing.T) {
	factory := &fakeFactory{}

	err := txn.Execute(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		return nil
	})

	require.NoError(t, err)
	require.Len(t, factory.created, 1)
	uow := factory.created[0]
	assert.Equal(t, 1, uow.beginCalls)
	assert.Equal(t, 1, uow.commitCalls)
	assert.Equal(t, 0, uow.rollbackCalls)
}

func Test_Execute_RollsBackOnceWhenWorkFails(t *testing.T) {
	factory := &fakeFactory{}
	workErr := errors.New("stage transition rejected")

	err := txn.Execute(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		return workErr
	})

	require.ErrorIs(t, err, workErr)
	require.Len(t, factory.created, 1)
	uow := factory.created[0]
	assert.Equal(t, 0, uow.commitCalls)
	assert.Equal(t, 1, uow.rollbackCalls)
}

func Test_Execute_RollsBackWhenCommitFails(t *testing.T) {
	commitErr := errors.New("commit: connection reset")
	factory := &fakeFactory{commitErr: commitErr}

	err := txn.Execute(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		return nil
	})

	require.ErrorIs(t, err, commitErr)
	uow := factory.created[0]
	assert.Equal(t, 1, uow.commitCalls)
	assert.Equal(t, 1, uow.rollbackCalls)
}

func Test_Execute_DoesNotInvokeWorkWhenBeginFails(t *testing.T) {
	beginErr := errors.New("acquire timed out")
	factory := &fakeFactory{beginErr: beginErr}
	invoked := false

	err := txn.Execute(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		invoked = true
		return nil
	})

	require.ErrorIs(t, err, beginErr)
	assert.False(t, invoked)
	assert.Equal(t, 0, factory.created[0].rollbackCalls)
}

func Test_Execute_RollsBackOnPanic(t *testing.T) {
	factory := &fakeFactory{}

	require.Panics(t, func() {
		_ = txn.Execute(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
			panic("boom")
		})
	})

	uow := factory.created[0]
	assert.Equal(t, 0, uow.commitCalls)
	assert.Equal(t, 1, uow.rollbackCalls)
}

func Test_ExecuteWithRetry_ReturnsLastErrorAfterExhaustingAttempts(t *testing.T) {
	factory := &fakeFactory{}
	attemptErrs := []error{
		errors.New("deadlock detected"),
		errors.New("deadlock detected"),
		errors.New("serialization failure"),
	}
	invocations := 0

	err := txn.ExecuteWithRetry(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		err := attemptErrs[invocations]
		invocations++
		return err
	}, txn.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond})

	require.ErrorIs(t, err, attemptErrs[2])
	assert.Equal(t, 3, invocations)
	assert.Len(t, factory.created, 3, "each attempt gets a fresh unit of work")
}

func Test_ExecuteWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	factory := &fakeFactory{}
	transient := errors.New("connection reset")
	invocations := 0

	err := txn.ExecuteWithRetry(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		invocations++
		if invocations < 3 {
			return transient
		}
		return nil
	}, txn.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 3, invocations)
	assert.Equal(t, 1, factory.created[2].commitCalls)
}

func Test_ExecuteWithRetry_StopsOnNonRetryableError(t *testing.T) {
	factory := &fakeFactory{}
	permanent := errors.New("offer already accepted")
	invocations := 0

	err := txn.ExecuteWithRetry(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		invocations++
		return permanent
	}, txn.RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, invocations)
}

func Test_ExecuteWithRetry_ReturnsContextErrorWhenCanceledDuringBackoff(t *testing.T) {
	factory := &fakeFactory{}
	ctx, cancel := context.WithCancel(context.Background())
	invocations := 0

	err := txn.ExecuteWithRetry(ctx, factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		invocations++
		cancel()
		return errors.New("transient")
	}, txn.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Minute})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, invocations)
}

func Test_ExecuteWithRetry_TreatsZeroAttemptsAsOne(t *testing.T) {
	factory := &fakeFactory{}
	invocations := 0

	err := txn.ExecuteWithRetry(context.Background(), factory, func(_ context.Context, _ *fakeUnitOfWork) error {
		invocations++
		return nil
	}, txn.RetryPolicy{})

	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
}
