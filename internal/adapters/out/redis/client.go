// Package redis provides the Redis-backed adapters: the rate-limit
// counter store, the read-model cache, and the session store. All of them
// share one client owned by the composition root; nothing here is a
// package-level singleton.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client wraps the shared go-redis connection pool.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis using a redis:// URL and verifies the
// connection with a ping. The caller owns the client and must Close it on
// shutdown.
func NewClient(ctx context.Context, url string, poolSize int) (*Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if poolSize > 0 {
		opt.PoolSize = poolSize
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing go-redis client. Used by tests that
// get their client from a container.
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Ping verifies connectivity. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// PoolStats reports connection pool usage. Used by the health endpoint.
func (c *Client) PoolStats() *redis.PoolStats {
	return c.rdb.PoolStats()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
