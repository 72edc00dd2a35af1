package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var _ port.SessionStore = SessionStore{}

// SessionStore keeps session tokens in Redis with the token TTL, so sessions
// survive restarts and are shared between replicas.
type SessionStore struct {
	rdb redis.Cmdable
}

func NewSessionStore(rdb redis.Cmdable) SessionStore {
	return SessionStore{rdb}
}

func (s SessionStore) SaveSession(
	ctx context.Context, token, userID string, ttl time.Duration,
) error {
	const op = "SessionStore.SaveSession"

	if err := s.rdb.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s SessionStore) SessionUser(
	ctx context.Context, token string,
) (string, bool, error) {
	const op = "SessionStore.SessionUser"

	userID, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return userID, true, nil
}

func (s SessionStore) DeleteSession(ctx context.Context, token string) error {
	const op = "SessionStore.DeleteSession"

	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
