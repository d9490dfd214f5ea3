package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// MemoryStore is an in-process CounterStore. A mutex makes the
// check-then-increment atomic across goroutines. Expired counters are
// dropped lazily on access.
//
// Suitable for tests and single-instance deployments; multi-instance
// deployments need the shared Redis store.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]memoryCounter
	now      func() time.Time
}

// NewMemoryStore creates an empty in-process counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]memoryCounter),
		now:      time.Now,
	}
}

// NewMemoryStoreWithClock creates a store with an injected clock so tests
// can move time instead of sleeping.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]memoryCounter),
		now:      now,
	}
}

// Admit implements CounterStore.
func (s *MemoryStore) Admit(_ context.Context, key string, max int64, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	counter, ok := s.counters[key]
	if ok && !counter.expiresAt.After(now) {
		counter = memoryCounter{}
		ok = false
	}

	if ok && counter.count >= max {
		return false, nil
	}

	counter.count++
	counter.expiresAt = now.Add(window)
	s.counters[key] = counter
	return true, nil
}

// Count implements CounterStore.
func (s *MemoryStore) Count(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counter, ok := s.counters[key]
	if !ok || !counter.expiresAt.After(s.now()) {
		return 0, nil
	}
	return counter.count, nil
}
