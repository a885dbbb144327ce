package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-telemetry/internal/adapter"
	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/crypto"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/internal/service"
	"github.com/MKhiriev/go-secure-telemetry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("telemetry-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	master, err := adapter.NewHTTPMasterAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create master adapter")
	}

	sessions, err := store.NewSessionStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	session, err := service.NewSession(cfg, master, crypto.NewPaillierSystem(), sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = session.Start(ctx); err != nil {
		if closeErr := session.Close(ctx); closeErr != nil {
			log.Error().Err(closeErr).Msg("close session")
		}
		log.Fatal().Err(err).Msg("start session")
	}

	log.Info().
		Str("mode", session.Mode().String()).
		Str("device", session.Device()).
		Msg("telemetry client running")

	<-ctx.Done()
	stop()

	shutdownCtx := context.Background()
	if err = session.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("close session")
		os.Exit(1)
	}
	log.Info().Msg("telemetry client stopped")
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
