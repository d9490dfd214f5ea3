package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"hireflow/internal/core/application/usecases/commands"
	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/offer"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/core/ports"
)

// Mock implementations shared by the handler tests in this package.

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Add(ctx context.Context, aggregate *role.Role) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRoleRepository) Update(ctx context.Context, aggregate *role.Role) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRoleRepository) Get(ctx context.Context, id kernel.UUID) (*role.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*role.Role), args.Error(1)
}

type MockCandidateRepository struct {
	mock.Mock
}

func (m *MockCandidateRepository) Add(ctx context.Context, aggregate *candidate.Candidate) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCandidateRepository) Update(ctx context.Context, aggregate *candidate.Candidate) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCandidateRepository) Get(ctx context.Context, id kernel.UUID) (*candidate.Candidate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*candidate.Candidate), args.Error(1)
}

type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Add(ctx context.Context, aggregate *interview.Interview) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInterviewRepository) Update(ctx context.Context, aggregate *interview.Interview) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInterviewRepository) Get(ctx context.Context, id kernel.UUID) (*interview.Interview, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*interview.Interview), args.Error(1)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

type mockTx struct {
	mock.Mock
}

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRoleUoW struct {
	mockTx
}

func (m *MockRoleUoW) RoleRepository() ports.RoleRepository {
	args := m.Called()
	return args.Get(0).(ports.RoleRepository)
}

type MockRoleUoWFactory struct {
	mock.Mock
}

func (m *MockRoleUoWFactory) Create() commands.RoleUoW {
	args := m.Called()
	return args.Get(0).(commands.RoleUoW)
}

type MockCandidateUoW struct {
	mockTx
}

func (m *MockCandidateUoW) RoleRepository() ports.RoleRepository {
	args := m.Called()
	return args.Get(0).(ports.RoleRepository)
}

func (m *MockCandidateUoW) CandidateRepository() ports.CandidateRepository {
	args := m.Called()
	return args.Get(0).(ports.CandidateRepository)
}

type MockCandidateUoWFactory struct {
	mock.Mock
}

func (m *MockCandidateUoWFactory) Create() commands.CandidateUoW {
	args := m.Called()
	return args.Get(0).(commands.CandidateUoW)
}

type MockInterviewUoW struct {
	mockTx
}

func (m *MockInterviewUoW) CandidateRepository() ports.CandidateRepository {
	args := m.Called()
	return args.Get(0).(ports.CandidateRepository)
}

func (m *MockInterviewUoW) InterviewRepository() ports.InterviewRepository {
	args := m.Called()
	return args.Get(0).(ports.InterviewRepository)
}

type MockInterviewUoWFactory struct {
	mock.Mock
}

func (m *MockInterviewUoWFactory) Create() commands.InterviewUoW {
	args := m.Called()
	return args.Get(0).(commands.InterviewUoW)
}

type MockOfferUoW struct {
	mockTx
}

func (m *MockOfferUoW) CandidateRepository() ports.CandidateRepository {
	args := m.Called()
	return args.Get(0).(ports.CandidateRepository)
}

func (m *MockOfferUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockOfferUoWFactory struct {
	mock.Mock
}

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}
