package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres_adapter "hireflow/internal/adapters/out/postgres"
	"hireflow/internal/adapters/out/postgres/candidaterepo"
	"hireflow/internal/adapters/out/postgres/interviewrepo"
	"hireflow/internal/adapters/out/postgres/offerrepo"
	"hireflow/internal/adapters/out/postgres/rolerepo"
	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/offer"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/core/ports"
	"hireflow/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// against a real PostgreSQL database, including the bounded-pool
// acquisition behavior.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *postgres_adapter.Database
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.dsn = dsn

	db, err := postgres_adapter.OpenDatabase(dsn, postgres_adapter.PoolConfig{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
	})
	suite.Require().NoError(err)
	suite.db = db

	err = db.Gorm().AutoMigrate(
		&rolerepo.RoleDTO{},
		&candidaterepo.CandidateDTO{},
		&interviewrepo.InterviewDTO{},
		&offerrepo.OfferDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, 5*time.Second)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Gorm().Exec("TRUNCATE TABLE roles, candidates, interviews, offers").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.RoleRepository())
	suite.NotNil(uow1.CandidateRepository())
	suite.NotNil(uow2.InterviewRepository())
	suite.NotNil(uow2.OfferRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testRole := createTestRole()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.RoleRepository().Add(ctx, testRole)
	suite.Require().NoError(err)

	retrieved, err := uow.RoleRepository().Get(ctx, testRole.ID())
	suite.Require().NoError(err)
	suite.Equal(testRole.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.RoleRepository().Get(ctx, testRole.ID())
	suite.Require().NoError(err)
	suite.Equal(testRole.Title(), retrieved.Title())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testRole := createTestRole()
	testCandidate := createTestCandidate(testRole.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.RoleRepository().Add(ctx, testRole)
	suite.Require().NoError(err)
	err = uow.CandidateRepository().Add(ctx, testCandidate)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.RoleRepository().Get(ctx, testRole.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = newUow.CandidateRepository().Get(ctx, testCandidate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_HiringWorkflow drives one candidate from application to
// offer across all four repositories in a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_HiringWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testRole := createTestRole()
	suite.Require().NoError(testRole.Open())
	suite.Require().NoError(uow.RoleRepository().Add(ctx, testRole))

	testCandidate := createTestCandidate(testRole.ID())
	suite.Require().NoError(uow.CandidateRepository().Add(ctx, testCandidate))

	suite.Require().NoError(testCandidate.Advance()) // Applied -> Screening
	suite.Require().NoError(testCandidate.StartInterviewing())
	testInterview, err := interview.NewInterview(
		kernel.NewUUID(), testCandidate.ID(), interview.Technical, time.Now().Add(24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.InterviewRepository().Add(ctx, testInterview))
	suite.Require().NoError(uow.CandidateRepository().Update(ctx, testCandidate))

	suite.Require().NoError(testCandidate.ReceiveOffer())
	testOffer, err := offer.NewOffer(kernel.NewUUID(), testCandidate.ID(), testRole.ID(),
		9_500_000, "USD", time.Now().Add(7*24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(testOffer.Send())
	suite.Require().NoError(uow.OfferRepository().Add(ctx, testOffer))
	suite.Require().NoError(uow.CandidateRepository().Update(ctx, testCandidate))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrievedCandidate, err := newUow.CandidateRepository().Get(ctx, testCandidate.ID())
	suite.Require().NoError(err)
	suite.Equal(candidate.Offered, retrievedCandidate.Stage())

	retrievedOffer, err := newUow.OfferRepository().Get(ctx, testOffer.ID())
	suite.Require().NoError(err)
	suite.Equal(offer.Sent, retrievedOffer.Status())

	retrievedInterview, err := newUow.InterviewRepository().Get(ctx, testInterview.ID())
	suite.Require().NoError(err)
	suite.Equal(interview.Scheduled, retrievedInterview.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	role1 := createTestRole()
	role2 := createTestRole()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.RoleRepository().Add(ctx, role1))
	suite.Require().NoError(uow2.RoleRepository().Add(ctx, role2))

	_, err := uow1.RoleRepository().Get(ctx, role2.ID())
	suite.Require().Error(err, "UOW1 should not see role2 before commit")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.RoleRepository().Get(ctx, role1.ID())
	suite.Require().NoError(err, "Role1 should persist after commit")
	_, err = newUow.RoleRepository().Get(ctx, role2.ID())
	suite.Require().Error(err, "Role2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testRole := createTestRole()

	err := uow.RoleRepository().Add(ctx, testRole)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.RoleRepository().Get(ctx, testRole.ID())
	suite.Require().NoError(err)
	suite.Equal(testRole.ID(), retrieved.ID())
}

// TestUnitOfWork_AcquireTimeout verifies that a saturated pool makes Begin
// fail with ResourceUnavailableError instead of waiting forever, and that
// finishing a transaction frees its connection for the next unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AcquireTimeout() {
	ctx := context.Background()

	smallDB, err := postgres_adapter.OpenDatabase(suite.dsn, postgres_adapter.PoolConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	suite.Require().NoError(err)
	defer smallDB.Close()

	factory := postgres_adapter.NewGormUnitOfWorkFactory(smallDB, 200*time.Millisecond)

	holder := factory.Create()
	suite.Require().NoError(holder.Begin(ctx))

	waiter := factory.Create()
	err = waiter.Begin(ctx)
	suite.Require().ErrorIs(err, errs.ErrResourceUnavailable)

	suite.Require().NoError(holder.Rollback(ctx))

	next := factory.Create()
	suite.Require().NoError(next.Begin(ctx))
	suite.Require().NoError(next.Rollback(ctx))
}

// TestUnitOfWork_CancellationReleasesConnection verifies that a canceled
// transaction context still returns the leased connection to the pool.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CancellationReleasesConnection() {
	smallDB, err := postgres_adapter.OpenDatabase(suite.dsn, postgres_adapter.PoolConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	suite.Require().NoError(err)
	defer smallDB.Close()

	factory := postgres_adapter.NewGormUnitOfWorkFactory(smallDB, 200*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	cancel()
	suite.Require().NoError(uow.Rollback(ctx), "rollback after cancellation should be clean")

	next := factory.Create()
	suite.Require().NoError(next.Begin(context.Background()),
		"connection should be back in the pool after cancellation")
	suite.Require().NoError(next.Rollback(context.Background()))
}

// TestOfferRepository_GetAllOverdue verifies the expiry scan picks only
// sent offers past their deadline.
func (suite *UnitOfWorkIntegrationTestSuite) TestDatabase_PingAndStats() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Ping(ctx))

	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()
	suite.Require().Error(suite.db.Ping(canceledCtx),
		"ping must honor context cancellation")

	stats := suite.db.Stats()
	suite.Assert().Equal(5, stats.MaxOpenConnections)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOfferRepository_GetAllOverdue() {
	ctx := context.Background()
	now := time.Now()
	uow := suite.factory.Create()

	overdue := createTestOffer(suite.T(), now.Add(-time.Hour))
	suite.Require().NoError(overdue.Send())
	fresh := createTestOffer(suite.T(), now.Add(time.Hour))
	suite.Require().NoError(fresh.Send())
	draft := createTestOffer(suite.T(), now.Add(-time.Hour)) // never sent

	suite.Require().NoError(uow.OfferRepository().Add(ctx, overdue))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, fresh))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, draft))

	overdueOffers, err := uow.OfferRepository().GetAllOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(overdueOffers, 1)
	suite.Equal(overdue.ID(), overdueOffers[0].ID())
}

func createTestRole() *role.Role {
	testRole, _ := role.NewRole(kernel.NewUUID(), "Backend Engineer", "Engineering", "senior")
	return testRole
}

func createTestCandidate(roleID kernel.UUID) *candidate.Candidate {
	testCandidate, _ := candidate.NewCandidate(kernel.NewUUID(), roleID, "Ada Lovelace", "ada@example.com")
	return testCandidate
}

func createTestOffer(t *testing.T, expiresAt time.Time) *offer.Offer {
	t.Helper()

	testOffer, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		8_000_000, "USD", expiresAt)
	if err != nil {
		t.Fatal(err)
	}
	return testOffer
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
