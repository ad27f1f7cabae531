package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/handler"
	"github.com/MKhiriev/go-stego-channel/internal/keyexchange"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/server"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/internal/workers"
	"github.com/MKhiriev/go-stego-channel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("stego-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == config.DefaultVersion && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	registry := keyexchange.NewRegistry(cfg.App.SessionTTL)

	services, err := service.NewServices(storages, registry, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(registry, cfg.Workers.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
