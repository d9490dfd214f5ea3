// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern over a bounded lib/pq connection pool.
//
// Each unit of work leases exactly one connection from the pool for the
// duration of its transaction. Acquisition is bounded by a configurable
// timeout so a saturated pool fails fast instead of queueing forever, and
// the lease is returned on every exit path: commit, rollback, and context
// cancellation (database/sql rolls the transaction back when the context
// that started it is canceled; the subsequent Rollback call still releases
// the connection).
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hireflow/internal/adapters/out/postgres/candidaterepo"
	"hireflow/internal/adapters/out/postgres/interviewrepo"
	"hireflow/internal/adapters/out/postgres/offerrepo"
	"hireflow/internal/adapters/out/postgres/rolerepo"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/ports"
	"hireflow/internal/pkg/errs"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Retained for outbox-style post-commit processing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one bounded
// pool. Each business operation gets a fresh instance with its own leased
// connection and transaction.
type GormUnitOfWorkFactory struct {
	db             *Database
	acquireTimeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory over the shared database.
// acquireTimeout bounds how long Begin waits for a pooled connection.
func NewGormUnitOfWorkFactory(db *Database, acquireTimeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

// Create produces a new UnitOfWork. Instances are single-use and must not
// be shared across goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		acquireTimeout:    f.acquireTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction on one leased
// connection and tracks aggregate changes made through its repositories.
type GormUnitOfWork struct {
	db             *Database
	acquireTimeout time.Duration

	conn *sql.Conn
	tx   *sql.Tx
	txDB *gorm.DB

	trackedAggregates []trackedAggregate
}

// Begin leases a connection from the pool and starts a transaction on it.
//
// The acquire timeout applies only to getting the connection; once the
// transaction has started, the caller's context governs it, so canceling
// that context aborts the transaction server-side. Pool exhaustion and
// acquire timeouts surface as errs.ResourceUnavailableError.
// Calling Begin again on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	acquireCtx := ctx
	if uow.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, uow.acquireTimeout)
		defer cancel()
	}

	conn, err := uow.db.SQL().Conn(acquireCtx)
	if err != nil {
		return errs.NewResourceUnavailableError("connection pool", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		return err
	}

	txDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: tx}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		_ = tx.Rollback()
		_ = conn.Close()
		return err
	}

	uow.conn = conn
	uow.tx = tx
	uow.txDB = txDB
	return nil
}

// Commit commits the transaction and releases the leased connection.
// Returns an error if no transaction is active. The connection is released
// even when the commit itself fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit()
	uow.release()
	return err
}

// Rollback rolls back the transaction and releases the leased connection.
// Returns an error if no transaction is active. A transaction already
// finished by the database (context cancellation, commit race) is treated
// as rolled back; the connection is still released.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback()
	uow.release()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// release returns the leased connection to the pool exactly once.
func (uow *GormUnitOfWork) release() {
	if uow.conn != nil {
		_ = uow.conn.Close()
	}
	uow.conn = nil
	uow.tx = nil
	uow.txDB = nil
}

// RoleRepository returns a role repository bound to the current transaction.
// Before Begin, it operates on the shared pool directly.
func (uow *GormUnitOfWork) RoleRepository() ports.RoleRepository {
	return rolerepo.NewGormRoleRepository(uow.session(), uow)
}

// CandidateRepository returns a candidate repository bound to the current transaction.
func (uow *GormUnitOfWork) CandidateRepository() ports.CandidateRepository {
	return candidaterepo.NewGormCandidateRepository(uow.session(), uow)
}

// InterviewRepository returns an interview repository bound to the current transaction.
func (uow *GormUnitOfWork) InterviewRepository() ports.InterviewRepository {
	return interviewrepo.NewGormInterviewRepository(uow.session(), uow)
}

// OfferRepository returns an offer repository bound to the current transaction.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.session(), uow)
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.txDB != nil {
		return uow.txDB
	}
	return uow.db.Gorm()
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
