package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both "no such account" and "wrong password"
	// so login responses never reveal which part failed.
	ErrWrongCredentials = errors.New("wrong credentials")

	// ErrSamePassword is returned when a password change supplies a new
	// password identical to the current one.
	ErrSamePassword = errors.New("new password matches the current one")
)
