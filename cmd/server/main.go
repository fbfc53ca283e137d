package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/config"
	"github.com/MKhiriev/go-secure-profile/internal/crypto"
	"github.com/MKhiriev/go-secure-profile/internal/handler"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/server"
	"github.com/MKhiriev/go-secure-profile/internal/service"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 10 * time.Second

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.WriteTo(os.Stdout)

	log := logger.NewLogger("go-secure-profile-server")
	log.Info().Object("build", buildInfo).Msg("starting server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	encryptor, err := crypto.NewEncryptor([]byte(cfg.App.MasterSecret))
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing encryption")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, encryptor, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
