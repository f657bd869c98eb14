package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/docs"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/session"
	"github.com/MKhiriev/go-auth-api/internal/workers"
)

// DatabasePinger reports database reachability for the health endpoint.
// Satisfied by *store.DB.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	sessions *session.Manager
	toucher  *workers.SessionToucher
	registry *docs.Registry
	db       DatabasePinger
	cfg      config.StructuredConfig
	cors     corsPolicy

	// the OpenAPI document is rendered once, on first request
	docOnce sync.Once
	docJSON []byte
	docErr  error

	logger *logger.Logger
}

// NewHandler wires the HTTP transport layer. Route descriptors are registered
// with the docs registry here; a registration conflict is a wiring bug, so it
// is returned as an error for main to treat as fatal.
func NewHandler(
	services *service.Services,
	sessions *session.Manager,
	toucher *workers.SessionToucher,
	registry *docs.Registry,
	db DatabasePinger,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handler, error) {
	h := &Handler{
		services: services,
		sessions: sessions,
		toucher:  toucher,
		registry: registry,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}

	cors, err := newCORSPolicy(cfg.Server.CORSAllowedOrigins)
	if err != nil {
		return nil, err
	}
	h.cors = cors

	if err := h.registerDocs(); err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return h, nil
}
