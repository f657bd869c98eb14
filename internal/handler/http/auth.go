package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := req.Validate(); !errs.Empty() {
		log.Warn().Int("fields", len(errs)).Msg("registration payload failed validation")
		writeValidationError(w, r, errs)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Email, req.Password)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("user registration failed")
		writeError(w, r, status, messageForStatus(status, err))
		return
	}

	log.Info().Str("id", registeredUser.UserID).Msg("user registered")
	h.startSession(w, r, registeredUser.Profile(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := req.Validate(); !errs.Empty() {
		writeValidationError(w, r, errs)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		status := statusFromError(err)
		log.Warn().Err(err).Msg("login failed")
		writeError(w, r, status, messageForStatus(status, err))
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")
	h.startSession(w, r, foundUser.Profile(), http.StatusOK)
}

// startSession issues a fresh session for an authenticated profile, sets the
// cookie and writes the auth response with the given status.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, profile models.Profile, status int) {
	log := logger.FromRequest(r)

	sess, err := h.sessions.Create(r.Context(), profile)
	if err != nil {
		errStatus := statusFromError(err)
		log.Err(err).Msg("session creation failed")
		writeError(w, r, errStatus, messageForStatus(errStatus, err))
		return
	}

	h.setSessionCookie(w, sess.Token, sess.ExpiresAt)
	if _, err := utils.WriteJSON(w, models.AuthResponse{ID: profile.UserID, Email: profile.Email}, status); err != nil {
		log.Err(err).Msg("error writing auth response")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, _ := utils.GetSessionTokenFromContext(ctx)
	if err := h.sessions.Delete(ctx, token); err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("session deletion failed")
		writeError(w, r, status, messageForStatus(status, err))
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("id", userID).Msg("profile lookup failed")
		writeError(w, r, status, messageForStatus(status, err))
		return
	}

	if _, err := utils.WriteJSON(w, models.AuthResponse{ID: profile.UserID, Email: profile.Email}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile response")
	}
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if errs := req.Validate(); !errs.Empty() {
		writeValidationError(w, r, errs)
		return
	}

	updatedUser, err := h.services.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		status := statusFromError(err)
		log.Warn().Err(err).Str("id", userID).Msg("password change failed")
		writeError(w, r, status, messageForStatus(status, err))
		return
	}

	log.Info().Str("id", updatedUser.UserID).Msg("password changed")
	if _, err := utils.WriteJSON(w, models.AuthResponse{ID: updatedUser.UserID, Email: updatedUser.Email}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing password change response")
	}
}
