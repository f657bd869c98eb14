package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/docs"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/models"
)

// openAPIPath is where the rendered OpenAPI document is served.
const openAPIPath = "/api-docs/openapi.json"

// registerDocs describes every API route for the documentation registry.
// Registration failures are wiring bugs and surface as startup errors.
func (h *Handler) registerDocs() error {
	routes := []docs.Route{
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/register",
			OperationID: "registerUser",
			Summary:     "Create a new account and start a session",
			Tags:        []string{"auth"},
			Public:      true,
			Status:      http.StatusCreated,
			Request:     &models.RegisterRequest{},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/login",
			OperationID: "login",
			Summary:     "Authenticate and start a session",
			Tags:        []string{"auth"},
			Public:      true,
			Request:     &models.LoginRequest{},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/logout",
			OperationID: "logout",
			Summary:     "Delete the current session",
			Tags:        []string{"auth"},
			Status:      http.StatusNoContent,
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/auth/profile",
			OperationID: "profile",
			Summary:     "Return the authenticated account",
			Tags:        []string{"auth"},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/auth/password",
			OperationID: "changePassword",
			Summary:     "Change the account password",
			Tags:        []string{"auth"},
			Request:     &models.ChangePasswordRequest{},
			Response:    &models.AuthResponse{},
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/health",
			OperationID: "health",
			Summary:     "Report server and dependency health",
			Tags:        []string{"ops"},
			Public:      true,
			Response:    &models.HealthResponse{},
		},
	}

	for _, route := range routes {
		if err := h.registry.Register(route); err != nil {
			return err
		}
	}
	return nil
}

// openAPIDocument serves the OpenAPI 3.1 JSON. The document is immutable
// after startup, so it is rendered once and reused.
func (h *Handler) openAPIDocument(w http.ResponseWriter, r *http.Request) {
	h.docOnce.Do(func() {
		h.docJSON, h.docErr = json.Marshal(h.registry.Build())
	})
	if h.docErr != nil {
		logger.FromRequest(r).Err(h.docErr).Msg("error rendering OpenAPI document")
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(h.docJSON)
}

func (h *Handler) swaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(docs.SwaggerUI(openAPIPath))
}

func (h *Handler) scalar(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(docs.Scalar(openAPIPath))
}
