package session

import (
	"context"
	"time"
)

// Store is the persistence contract for session records. Implementations
// must provide read-after-delete consistency: once Delete returns, Get on
// the same token reports [ErrSessionNotFound] to every caller.
type Store interface {
	// Create persists sess under its token with the given TTL.
	// A token that is already present yields [ErrTokenExists].
	Create(ctx context.Context, sess Session, ttl time.Duration) error

	// Get retrieves the session for token, or [ErrSessionNotFound].
	Get(ctx context.Context, token string) (Session, error)

	// Touch slides the session's expiry forward by ttl and records the
	// access time. Missing or expired token yields [ErrSessionNotFound].
	Touch(ctx context.Context, token string, ttl time.Duration) error

	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
