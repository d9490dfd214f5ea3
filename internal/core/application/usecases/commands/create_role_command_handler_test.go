package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hireflow/internal/core/application/usecases/commands"
	"hireflow/internal/core/domain/model/role"
)

func TestCreateRoleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateRoleCommand("Backend Engineer", "Engineering", "senior")
	require.NoError(t, err)

	var capturedRole *role.Role
	mockRepo := new(MockRoleRepository)
	mockUoW := new(MockRoleUoW)
	mockFactory := new(MockRoleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RoleRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(r *role.Role) bool {
			capturedRole = r
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateRoleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedRole)
	assert.Equal(t, cmd.RoleID(), capturedRole.ID())
	assert.Equal(t, "Backend Engineer", capturedRole.Title())
	assert.Equal(t, role.Draft, capturedRole.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateRoleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateRoleCommand

	mockFactory := new(MockRoleUoWFactory)
	handler := commands.NewCreateRoleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateRoleCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateRoleCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateRoleCommand("Backend Engineer", "Engineering", "")
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockRoleUoW)
	mockFactory := new(MockRoleUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateRoleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateRoleCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateRoleCommand("Backend Engineer", "Engineering", "")
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockRoleRepository)
	mockUoW := new(MockRoleUoW)
	mockFactory := new(MockRoleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RoleRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*role.Role")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateRoleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateRoleCommandHandler_Handle_CommitErrorTriggersRollback(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateRoleCommand("Backend Engineer", "Engineering", "")
	require.NoError(t, err)

	commitError := errors.New("commit failed")
	mockRepo := new(MockRoleRepository)
	mockUoW := new(MockRoleUoW)
	mockFactory := new(MockRoleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RoleRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*role.Role")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(commitError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateRoleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, commitError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
