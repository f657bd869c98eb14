package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/session"
	"github.com/MKhiriev/go-auth-api/internal/utils"
)

// sessionAuth guards the protected route group. It resolves the session token
// (cookie first, bearer header as fallback) against the session store and, on
// success, puts the user's identity and the token into the request context.
//
// Rejections:
//   - missing, invalid or expired token → 401 and the cookie is cleared, so
//     browsers stop replaying a dead session.
//   - session store unreachable → 503. An unavailable store never downgrades
//     a request to anonymous.
//
// A valid session is refreshed asynchronously through the toucher worker; the
// response does not wait for the store round trip.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Msg("unauthenticated request")
			h.clearSessionCookie(w)
			writeError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}

		sess, err := h.sessions.Get(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrSessionNotFound):
				log.Warn().Msg("expired or unknown session token")
				h.clearSessionCookie(w)
				writeError(w, r, http.StatusUnauthorized, "session expired or invalid")
			case errors.Is(err, session.ErrStoreUnavailable):
				log.Err(err).Msg("session store unavailable")
				writeError(w, r, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable))
			default:
				log.Err(err).Msg("session lookup failed")
				writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			}
			return
		}

		h.toucher.Enqueue(token)

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, sess.UserID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
