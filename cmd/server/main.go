package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-grid-portal/internal/config"
	"github.com/MKhiriev/go-grid-portal/internal/handler"
	"github.com/MKhiriev/go-grid-portal/internal/logger"
	"github.com/MKhiriev/go-grid-portal/internal/ratelimit"
	"github.com/MKhiriev/go-grid-portal/internal/server"
	"github.com/MKhiriev/go-grid-portal/internal/service"
	"github.com/MKhiriev/go-grid-portal/internal/session"
	"github.com/MKhiriev/go-grid-portal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-grid-portal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	sessions := session.NewManager(
		storages.Sessions,
		cfg.Sessions.Secret,
		cfg.Sessions.CookieName,
		cfg.Sessions.TTL,
		cfg.App.Production(),
		log,
	)
	go sessions.RunCleanup(ctx, cfg.Sessions.CleanupInterval)

	limiter := ratelimit.New(cfg.Auth.RateLimitAttempts, cfg.Auth.RateLimitWindow)

	handlers, err := handler.NewHandlers(services, sessions, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
