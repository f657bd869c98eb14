package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID string).
	UserID string `json:"id"`

	// Email is the unique login identifier. Stored lower-cased.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last account modification
	// (currently only password changes).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public projection of a User: the subset of account
// fields that may be stored in a session and returned to clients.
type Profile struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{UserID: u.UserID, Email: u.Email}
}
