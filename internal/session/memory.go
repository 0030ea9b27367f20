package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	accountID string
	expiresAt time.Time
}

// MemoryStore is an in-process Store with the same contract as RedisStore.
// Expired entries are dropped lazily on Resolve.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry), ttl: ttl}
}

// Issue mints a uuid-v4 token mapped to the account.
func (s *MemoryStore) Issue(_ context.Context, accountID string) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = entry{accountID: accountID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

// Resolve returns the account id, or ErrNoSession for unknown, revoked, or
// expired tokens.
func (s *MemoryStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNoSession
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", ErrNoSession
	}
	return e.accountID, nil
}

// Revoke deletes the token; absent tokens are a no-op.
func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }
