package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

// health probes both dependencies within the request's deadline and reports
// per-component state. Any failing component degrades the whole response
// to 503.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status := http.StatusOK
	resp := models.HealthResponse{
		Status: "ok",
		Components: map[string]string{
			"database": "ok",
			"sessions": "ok",
		},
	}

	if err := h.db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("database unavailable")
		resp.Components["database"] = "unavailable"
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	if err := h.sessions.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("session store unavailable")
		resp.Components["sessions"] = "unavailable"
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
