package main

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/config"
	handlerhttp "github.com/studysesh/study-sesh/internal/handler/http"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/server"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("study-sesh-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	provider := adapter.NewOpenRouterProvider(cfg.Assistant, log)
	services := service.NewServices(storages, provider, *cfg, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
