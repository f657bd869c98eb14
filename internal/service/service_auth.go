package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/password"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and password
// changes using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies bcrypt password hashes. Plain-text
	// passwords never leave this service.
	hasher *password.Hasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher *password.Hasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It hashes the password with the configured bcrypt cost and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with server-assigned UserID and timestamps) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, email string, plainPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || plainPassword == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(plainPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: email, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password against
// the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongCredentials if the account does not exist or the password does
//     not match. The two cases are deliberately indistinguishable.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, email string, plainPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || plainPassword == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown account")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(plainPassword, foundUser.PasswordHash) {
		log.Warn().Str("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// Profile returns the public view of the account behind an authenticated
// session. A missing row means the account was deleted after the session was
// issued; the storage error passes through for the transport layer to map.
func (a *authService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser.Profile(), nil
}

// ChangePassword replaces the account's password after re-verifying the
// current one.
//
// Returns the updated user record or:
//   - ErrInvalidDataProvided if any argument is empty.
//   - ErrWrongCredentials if the current password does not match.
//   - ErrSamePassword if the new password equals the current one.
//   - A wrapped storage error for any repository failure.
func (a *authService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" || currentPassword == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(currentPassword, foundUser.PasswordHash) {
		log.Warn().Str("id", userID).Msg("wrong current password")
		return models.User{}, ErrWrongCredentials
	}

	if newPassword == currentPassword {
		return models.User{}, ErrSamePassword
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	updatedUser, err := a.userRepository.UpdatePassword(ctx, userID, hash)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("password update ended with error")
		return models.User{}, fmt.Errorf("password update ended with error: %w", err)
	}

	return updatedUser, nil
}

// normalizeEmail canonicalizes the login identifier so lookups are
// case-insensitive: emails are stored and searched lower-cased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
