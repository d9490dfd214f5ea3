package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hireflow/internal/pkg/errs"
)

// admitScript is the atomic fixed-window admit: check, conditional
// increment, expiry (re)arm, all in one round trip. A denied request never
// touches the counter or its expiry.
var admitScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and tonumber(current) >= tonumber(ARGV[1]) then
	return 0
end
redis.call('INCR', KEYS[1])
redis.call('PEXPIRE', KEYS[1], ARGV[2])
return 1
`)

// CounterStore implements ratelimit.CounterStore on Redis, giving all
// application instances a shared view of per-identifier counters.
type CounterStore struct {
	client *Client
}

// NewCounterStore creates a counter store over the shared client.
func NewCounterStore(client *Client) *CounterStore {
	return &CounterStore{client: client}
}

// Admit runs the admit script. Redis failures surface as
// errs.ResourceUnavailableError so the middleware can tell an outage from
// a deny.
func (s *CounterStore) Admit(ctx context.Context, key string, max int64, window time.Duration) (bool, error) {
	result, err := admitScript.Run(ctx, s.client.rdb, []string{key}, max, window.Milliseconds()).Int64()
	if err != nil {
		return false, errs.NewResourceUnavailableError("rate limit counter store", err)
	}

	return result == 1, nil
}

// Count reads the current counter value without mutating it. A missing
// counter reads as 0.
func (s *CounterStore) Count(ctx context.Context, key string) (int64, error) {
	count, err := s.client.rdb.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.NewResourceUnavailableError("rate limit counter store", err)
	}

	return count, nil
}
