package session

import (
	"context"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SessionStore = (*MemoryStore)(nil)

type entry struct {
	userID  string
	expires time.Time
}

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured and by the local-only gateway.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry), now: time.Now}
}

func (s *MemoryStore) SaveSession(
	_ context.Context, token, userID string, ttl time.Duration,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{userID, s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) SessionUser(
	_ context.Context, token string,
) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return "", false, nil
	}
	if s.now().After(e.expires) {
		delete(s.sessions, token)
		return "", false, nil
	}
	return e.userID, true, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
