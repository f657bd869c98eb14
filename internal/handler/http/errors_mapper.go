package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/session"
	"github.com/MKhiriev/go-auth-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrSamePassword:        http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusUnauthorized,

	session.ErrSessionNotFound:  http.StatusUnauthorized,
	session.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPoolExhausted:      http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageForStatus keeps response bodies generic for server-side failures;
// the full error only goes to the logs.
func messageForStatus(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
