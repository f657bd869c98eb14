package session

import "errors"

// Sentinel errors returned by session stores and the manager. Callers should
// match against these values with [errors.Is].
var (
	// ErrSessionNotFound is returned when a token does not resolve to a
	// live session record (never issued, deleted, or TTL-expired).
	ErrSessionNotFound = errors.New("session not found")

	// ErrTokenExists is returned by Store.Create when the generated token
	// collides with an existing record. The manager retries with a fresh
	// token; callers outside this package should not normally observe it.
	ErrTokenExists = errors.New("session token already exists")

	// ErrStoreUnavailable is returned (wrapped) when the backing store is
	// unreachable. The HTTP layer maps it to 503; it must never be
	// downgraded to an anonymous pass-through.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
