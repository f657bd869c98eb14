package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/docs"
	handler "github.com/MKhiriev/go-auth-api/internal/handler/http"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/server"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/session"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/internal/workers"
	"github.com/MKhiriev/go-auth-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(ctx, db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	sessionStore, err := session.NewRedisStore(ctx, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session store")
	}
	defer sessionStore.Close()

	sessions := session.NewManager(sessionStore, cfg.Session.TTL, log)
	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)

	toucher := workers.NewSessionToucher(sessions, cfg.Workers.TouchQueueSize, log)
	poolChecker := workers.NewPoolChecker(db, sessionStore, cfg.Workers.HealthCheckInterval, log)
	backgroundWorkers := workers.NewWorkers(toucher, poolChecker)

	registry := docs.NewRegistry("go-auth-api", buildVersion)
	handlers, err := handler.NewHandler(services, sessions, toucher, registry, db, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		backgroundWorkers.Run(workerCtx)
		close(workersDone)
	}()

	srv.RunServer()

	stopWorkers()
	<-workersDone
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
