package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// Every method checks a connection out of the pool via [DB.Acquire] for the
// duration of a single unit of work, and obtains a context-scoped logger via
// [logger.FromContext] for structured, request-level tracing of database
// interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection pool and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt). The
// account identifier is generated here; callers supply email and password
// hash only.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = uuid.NewString()
	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	lease, err := r.db.Acquire(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer lease.Release()

	row := lease.QueryRowContext(ctx, query, args...)

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		switch {
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotSaved
		default:
			r.logDBError(log, "*userRepository.CreateUser", err)
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value. Emails are unique, so at most one row can match.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", func() (string, []any, error) {
		return buildFindUserByEmailQuery(email)
	})
}

// FindUserByID retrieves the user record with the given identifier. It backs
// session-authenticated lookups, so a missing row means the account was
// deleted after the session was issued.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", func() (string, []any, error) {
		return buildFindUserByIDQuery(userID)
	})
}

func (r *userRepository) findUser(ctx context.Context, caller string, buildQuery func() (string, []any, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	lease, err := r.db.Acquire(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer lease.Release()

	var foundUser models.User
	row := lease.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logDBError(log, caller, err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdatePassword replaces the stored password hash for the given account and
// returns the updated record.
//
// Error handling:
//   - No row updated ([sql.ErrNoRows] from RETURNING) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(userID, passwordHash, time.Now().UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	lease, err := r.db.Acquire(ctx)
	if err != nil {
		return models.User{}, err
	}
	defer lease.Release()

	var updatedUser models.User
	row := lease.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updatedUser.UserID, &updatedUser.Email, &updatedUser.PasswordHash, &updatedUser.CreatedAt, &updatedUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		r.logDBError(log, "*userRepository.UpdatePassword", err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updatedUser, nil
}

// logDBError reports an unexpected driver error, downgrading transient
// failures to warnings based on the pool's error classifier.
func (r *userRepository) logDBError(log *logger.Logger, caller string, err error) {
	if r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", caller).Msg("transient database error")
		return
	}
	log.Err(err).Str("func", caller).Msg("unexpected DB error")
}
