package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/filebox/service/internal/apperr"
)

// keyPrefix namespaces session keys in redis.
const keyPrefix = "auth_"

// RedisStore implements Store on a redis backend. The redis client is
// created once at startup and shared with the job queue.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing redis client. ttl is the fixed token
// lifetime; pass DefaultTTL unless testing.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Issue mints a uuid-v4 token and stores token→accountID with the TTL.
// Tokens are not deduplicated: each call creates an independent session.
func (s *RedisStore) Issue(ctx context.Context, accountID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, accountID, s.ttl).Err(); err != nil {
		return "", apperr.Wrap(apperr.KindDependencyUnavailable, "session store unavailable", err)
	}
	return token, nil
}

// Resolve looks up the token. Expiry is enforced by redis itself.
func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", apperr.Wrap(apperr.KindDependencyUnavailable, "session store unavailable", err)
	}
	return accountID, nil
}

// Revoke deletes the token mapping. Deleting an absent key succeeds.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return apperr.Wrap(apperr.KindDependencyUnavailable, "session store unavailable", err)
	}
	return nil
}

// Ping reports redis liveness.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
