package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig bounds the database/sql connection pool backing all units of
// work. MaxOpenConns is the hard cap on concurrent transactions; Begin
// waits at most AcquireTimeout for a free connection once the cap is hit.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AcquireTimeout  time.Duration
}

// Database owns the shared connection pool and the gorm handle built on top
// of it. The composition root creates exactly one Database and closes it on
// shutdown; nothing in this package holds global state.
type Database struct {
	sqlDB *sql.DB
	gorm  *gorm.DB
}

// OpenDatabase opens a bounded lib/pq connection pool and wraps it in gorm.
// The same pool serves transactional writes (through units of work) and
// read-side queries.
func OpenDatabase(dsn string, pool PoolConfig) (*Database, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm over postgres pool: %w", err)
	}

	return &Database{sqlDB: sqlDB, gorm: gormDB}, nil
}

// Gorm returns the gorm handle over the shared pool.
func (d *Database) Gorm() *gorm.DB {
	return d.gorm
}

// SQL returns the underlying database/sql pool.
func (d *Database) SQL() *sql.DB {
	return d.sqlDB
}

// Ping verifies connectivity. Used by the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	return d.sqlDB.PingContext(ctx)
}

// Stats reports pool usage. Used by the health endpoint.
func (d *Database) Stats() sql.DBStats {
	return d.sqlDB.Stats()
}

// Close releases the pool.
func (d *Database) Close() error {
	return d.sqlDB.Close()
}
