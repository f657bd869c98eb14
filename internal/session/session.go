package session

import "time"

// Session is the server-side record of an authenticated client's state,
// referenced by an opaque client-held token. The token itself is never
// persisted inside the record blob; it is the storage key.
type Session struct {
	// Token is the opaque identifier held by the client. Populated on
	// creation and on retrieval; excluded from the stored blob.
	Token string `json:"-"`

	// UserID is the identifier of the authenticated user.
	UserID string `json:"user_id"`

	// Email is the login identifier of the authenticated user, kept in the
	// session so profile reads do not require a database round trip.
	Email string `json:"email"`

	// Attributes carries arbitrary per-session key/value state.
	Attributes map[string]string `json:"attributes,omitempty"`

	// CreatedAt is when the session was issued.
	CreatedAt time.Time `json:"created_at"`

	// LastAccess is updated by Touch on each authenticated request.
	LastAccess time.Time `json:"last_access"`

	// ExpiresAt is the current expiry deadline. Sliding: every Touch moves
	// it forward by the configured TTL.
	ExpiresAt time.Time `json:"expires_at"`
}
