package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session records in process memory. It is safe for
// concurrent use and intended for development and tests; it offers none of
// the cross-instance sharing of [RedisStore].
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Create implements [Store].
func (s *MemoryStore) Create(_ context.Context, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.Token]; exists {
		return ErrTokenExists
	}

	sess.ExpiresAt = time.Now().Add(ttl)
	s.sessions[sess.Token] = sess
	return nil
}

// Get implements [Store]. Expired records are removed lazily on access.
func (s *MemoryStore) Get(_ context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, ErrSessionNotFound
	}

	sess.Token = token
	return sess, nil
}

// Touch implements [Store].
func (s *MemoryStore) Touch(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	now := time.Now()
	if !ok || now.After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return ErrSessionNotFound
	}

	sess.LastAccess = now
	sess.ExpiresAt = now.Add(ttl)
	s.sessions[token] = sess
	return nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Ping implements [Store]; the in-memory store is always reachable.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
