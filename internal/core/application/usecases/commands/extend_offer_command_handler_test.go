package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hireflow/internal/core/application/usecases/commands"
	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/offer"
	"hireflow/internal/pkg/errs"
)

func interviewingCandidateFixture(t *testing.T) *candidate.Candidate {
	t.Helper()

	candidateEntity, err := candidate.NewCandidate(
		kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, candidateEntity.Advance()) // Applied -> Screening
	require.NoError(t, candidateEntity.Advance()) // Screening -> Interviewing

	return candidateEntity
}

func TestExtendOfferCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	candidateEntity := interviewingCandidateFixture(t)
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	cmd, err := commands.NewExtendOfferCommand(candidateEntity.ID(), 12_000_000, "USD", expiresAt)
	require.NoError(t, err)

	var capturedOffer *offer.Offer
	mockCandidateRepo := new(MockCandidateRepository)
	mockOfferRepo := new(MockOfferRepository)
	mockUoW := new(MockOfferUoW)
	mockFactory := new(MockOfferUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CandidateRepository").Return(mockCandidateRepo).Once(),
		mockCandidateRepo.On("Get", ctx, candidateEntity.ID()).Return(candidateEntity, nil).Once(),
		mockUoW.On("OfferRepository").Return(mockOfferRepo).Once(),
		mockOfferRepo.On("Add", ctx, mock.MatchedBy(func(o *offer.Offer) bool {
			capturedOffer = o
			return true
		})).Return(nil).Once(),
		mockCandidateRepo.On("Update", ctx, candidateEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewExtendOfferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedOffer)
	assert.Equal(t, cmd.OfferID(), capturedOffer.ID())
	assert.Equal(t, candidateEntity.ID(), capturedOffer.CandidateID())
	assert.Equal(t, candidateEntity.RoleID(), capturedOffer.RoleID())
	assert.Equal(t, offer.Sent, capturedOffer.Status())
	assert.Equal(t, candidate.Offered, candidateEntity.Stage())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCandidateRepo.AssertExpectations(t)
	mockOfferRepo.AssertExpectations(t)
}

func TestExtendOfferCommandHandler_Handle_AppliedCandidateCannotReceiveOffer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	candidateEntity, err := candidate.NewCandidate(
		kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)

	cmd, err := commands.NewExtendOfferCommand(
		candidateEntity.ID(), 12_000_000, "USD", time.Now().Add(time.Hour))
	require.NoError(t, err)

	mockCandidateRepo := new(MockCandidateRepository)
	mockUoW := new(MockOfferUoW)
	mockFactory := new(MockOfferUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CandidateRepository").Return(mockCandidateRepo).Once(),
		mockCandidateRepo.On("Get", ctx, candidateEntity.ID()).Return(candidateEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewExtendOfferCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockCandidateRepo.AssertExpectations(t)
}

func TestNewExtendOfferCommand_ValidationErrors(t *testing.T) {
	candidateID := kernel.NewUUID()
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name        string
		amount      int64
		currency    string
		expiresAt   time.Time
		expectedErr error
	}{
		{"zero amount", 0, "USD", expiresAt, commands.ErrAmountIsInvalid},
		{"negative amount", -1, "USD", expiresAt, commands.ErrAmountIsInvalid},
		{"empty currency", 100, "", expiresAt, commands.ErrCurrencyIsRequired},
		{"zero deadline", 100, "USD", time.Time{}, commands.ErrExpiresAtIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewExtendOfferCommand(candidateID, tt.amount, tt.currency, tt.expiresAt)

			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
