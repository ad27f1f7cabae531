package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-stego-channel/internal/adapter"
	"github.com/MKhiriev/go-stego-channel/internal/client"
	"github.com/MKhiriev/go-stego-channel/internal/config"
	"github.com/MKhiriev/go-stego-channel/internal/logger"
	"github.com/MKhiriev/go-stego-channel/internal/service"
	"github.com/MKhiriev/go-stego-channel/internal/store"
	"github.com/MKhiriev/go-stego-channel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so that deferred cleanup still runs.
func run() int {
	cfg, err := config.GetClientConfig("")
	if err != nil {
		logger.NewClientLogger("stego-client", "").Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}

	log := logger.NewClientLogger("stego-client", cfg.LogPath)

	// exchange and --remote need a server; everything else works offline
	var serverAdapter adapter.ServerAdapter
	if cfg.Adapter.HTTPAddress != "" {
		if serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log); err != nil {
			log.Err(err).Msg("create server adapter")
			return 2
		}
	}

	localStorage, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	defer localStorage.Close()

	services, err := service.NewClientServices(localStorage, serverAdapter, *cfg, log)
	if err != nil {
		log.Err(err).Msg("create client services")
		return 1
	}

	app, err := client.NewApp(services, serverAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(); err != nil {
		return 1
	}
	return 0
}
