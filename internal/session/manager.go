package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/models"
)

// tokenBytes is the entropy of a session token. 32 random bytes give 256
// bits, comfortably above the 128-bit floor for unguessable identifiers.
const tokenBytes = 32

// createRetries bounds how many fresh tokens Create draws when the store
// reports a collision before giving up.
const createRetries = 3

// Manager owns the session protocol: token generation, creation on
// successful authentication, sliding-TTL refresh, and deletion on logout.
// It is safe for concurrent use; all state is read-only after construction.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger *logger.Logger
}

// NewManager constructs a Manager over the given store with the configured
// sliding TTL.
func NewManager(store Store, ttl time.Duration, logger *logger.Logger) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Create issues a new session for the given user profile. The returned
// session carries a freshly generated token; tokens are never reused, so a
// token observed after deletion can only mean "no session".
func (m *Manager) Create(ctx context.Context, profile models.Profile) (Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	sess := Session{
		UserID:     profile.UserID,
		Email:      profile.Email,
		CreatedAt:  now,
		LastAccess: now,
		ExpiresAt:  now.Add(m.ttl),
	}

	for attempt := 0; attempt < createRetries; attempt++ {
		token, err := generateToken()
		if err != nil {
			return Session{}, fmt.Errorf("error generating session token: %w", err)
		}

		sess.Token = token
		err = m.store.Create(ctx, sess, m.ttl)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ErrTokenExists) {
			log.Err(err).Msg("error creating session")
			return Session{}, err
		}
	}

	return Session{}, fmt.Errorf("session token collision persisted after %d attempts", createRetries)
}

// Get resolves a token to its session record.
func (m *Manager) Get(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrSessionNotFound
	}
	return m.store.Get(ctx, token)
}

// Touch slides the session's expiry forward by the configured TTL.
func (m *Manager) Touch(ctx context.Context, token string) error {
	return m.store.Touch(ctx, token, m.ttl)
}

// Delete removes the session. Deleting an absent token is not an error, so
// logout is idempotent.
func (m *Manager) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Ping reports whether the backing store is reachable.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

// generateToken draws a cryptographically random, hex-encoded token.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
