package cmd

import (
	"fmt"
	"time"
)

// Config carries all environment-driven settings for the application.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAcquireTimeout  time.Duration

	RedisURL      string
	RedisPoolSize int

	RateLimitMaxRequests int64
	RateLimitWindow      time.Duration

	SessionTTL time.Duration
}

// DBConnectionString assembles the lib/pq DSN from the DB settings.
func (c Config) DBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
