package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hireflow/internal/pkg/errs"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps recruiter sessions in Redis. Each session is a JSON
// document under "session:<id>" whose TTL is the session lifetime; Redis
// expiry is the logout mechanism.
type SessionStore struct {
	client *Client
	ttl    time.Duration
}

// NewSessionStore creates a session store. ttl is the lifetime applied on
// creation and on every Extend.
func NewSessionStore(client *Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Create stores data under a fresh session ID and returns the ID.
func (s *SessionStore) Create(ctx context.Context, data map[string]any) (string, error) {
	sessionID := uuid.NewString()

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	if err = s.client.rdb.Set(ctx, sessionKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get returns the session data. A missing or expired session yields
// errs.ObjectNotFoundError.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (map[string]any, error) {
	payload, err := s.client.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("sessionID", sessionID)
		}
		return nil, err
	}

	var data map[string]any
	if err = json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}
	return data, nil
}

// Update replaces the session data while preserving the remaining TTL.
// Updating a missing session yields errs.ObjectNotFoundError.
func (s *SessionStore) Update(ctx context.Context, sessionID string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	set, err := s.client.rdb.SetXX(ctx, sessionKeyPrefix+sessionID, payload, redis.KeepTTL).Result()
	if err != nil {
		return err
	}
	if !set {
		return errs.NewObjectNotFoundError("sessionID", sessionID)
	}
	return nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// Extend resets the session TTL to the full lifetime. Extending a missing
// session yields errs.ObjectNotFoundError.
func (s *SessionStore) Extend(ctx context.Context, sessionID string) error {
	extended, err := s.client.rdb.Expire(ctx, sessionKeyPrefix+sessionID, s.ttl).Result()
	if err != nil {
		return err
	}
	if !extended {
		return errs.NewObjectNotFoundError("sessionID", sessionID)
	}
	return nil
}
