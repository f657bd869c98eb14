package models

import (
	"fmt"
	"strings"
)

// MinPasswordLength is the minimum accepted password length, in bytes.
const MinPasswordLength = 8

// FieldError describes a single invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrors is the collection of field errors produced by request
// validation. A nil/empty value means the payload is valid.
type ValidationErrors []FieldError

// Error implements the error interface by joining all field messages.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Error))
	}
	return strings.Join(parts, "; ")
}

// Empty reports whether no validation errors were collected.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

func (v ValidationErrors) add(field, message string) ValidationErrors {
	return append(v, FieldError{Field: field, Error: message})
}

func (v ValidationErrors) checkEmail(field, email string) ValidationErrors {
	if email == "" {
		return v.add(field, "email is required")
	}

	// Deliberately loose: presence of exactly one "@" with non-empty
	// local and domain parts. Full RFC 5322 parsing rejects addresses
	// real mail systems accept.
	at := strings.Count(email, "@")
	if at != 1 {
		return v.add(field, "invalid email format")
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" || !strings.Contains(domain, ".") {
		return v.add(field, "invalid email format")
	}

	return v
}

func (v ValidationErrors) checkPassword(field, password string) ValidationErrors {
	if password == "" {
		return v.add(field, "password is required")
	}
	if len(password) < MinPasswordLength {
		return v.add(field, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return v
}
