package auth

import (
	"context"
	"sync"
	"time"
)

// SessionStore holds server-side sessions keyed by opaque token. Get must
// treat an expired session as absent; implementations are safe for
// concurrent use.
type SessionStore interface {
	Put(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Touch(ctx context.Context, token string, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
}

// MemorySessionStore is the in-process implementation, used in development
// and tests. Expired entries are evicted lazily on read and by Sweep.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// WithClock replaces the store's clock; tests pin it.
func (s *MemorySessionStore) WithClock(now func() time.Time) *MemorySessionStore {
	s.now = now
	return s
}

func (s *MemorySessionStore) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if session.Expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil
	}

	copied := *session
	return &copied, nil
}

func (s *MemorySessionStore) Touch(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok {
		session.ExpiresAt = expiresAt
	}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// Sweep drops every expired session and returns how many were removed.
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
