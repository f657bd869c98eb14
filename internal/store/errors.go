package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUserNotSaved is returned when an INSERT completes without error but
	// produces no row, indicating that no account was actually persisted.
	ErrUserNotSaved = errors.New("user was not saved")

	// ErrPoolExhausted is returned by [DB.Acquire] when no connection becomes
	// free within the configured acquire timeout. Callers should surface it as
	// a dependency failure rather than retrying in a tight loop.
	ErrPoolExhausted = errors.New("connection pool exhausted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrConnectingDatabase is returned when opening or pinging the database
	// at startup fails.
	ErrConnectingDatabase = errors.New("error connecting database")
)
