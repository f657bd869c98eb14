package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// Sentinel errors used by the session middleware when extracting the token
// from the request. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when the request carries neither a
	// session cookie nor a bearer token.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrEmptyBearerToken is returned when the "Authorization" header uses
	// the Bearer scheme but the token value is an empty string.
	ErrEmptyBearerToken = errors.New("empty bearer token")
)

// writeError sends the uniform error envelope with the given status.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeValidationError sends a 400 with field-level details.
func writeValidationError(w http.ResponseWriter, r *http.Request, errs models.ValidationErrors) {
	body := models.ErrorResponse{
		Message: "validation failed",
		Details: []models.FieldError(errs),
	}
	if _, err := utils.WriteJSON(w, body, http.StatusBadRequest); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
