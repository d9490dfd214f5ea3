package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a JSON read-model cache. The HTTP adapter uses it to serve
// pipeline analytics without recomputing the funnel on every request.
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a cache over the shared client. All keys are stored
// under the given prefix.
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Set marshals value to JSON and stores it under key with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	return c.client.rdb.Set(ctx, c.key(key), payload, ttl).Err()
}

// Get unmarshals the cached JSON for key into dest. Returns false without
// touching dest when the key is absent or expired.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err = json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("unmarshal cache value: %w", err)
	}
	return true, nil
}

// Delete removes key from the cache. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.rdb.Del(ctx, c.key(key)).Err()
}

// TTL returns the remaining lifetime of key, or false when the key is absent.
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, bool, error) {
	ttl, err := c.client.rdb.TTL(ctx, c.key(key)).Result()
	if err != nil {
		return 0, false, err
	}
	if ttl < 0 {
		return 0, false, nil
	}
	return ttl, true, nil
}

func (c *Cache) key(key string) string {
	return c.prefix + ":" + key
}
