package service

import (
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/password"
	"github.com/MKhiriev/go-auth-api/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := password.NewHasher(cfg.App.BcryptCost, logger)
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, logger),
	}
}
