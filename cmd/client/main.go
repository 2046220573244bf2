package main

import (
	"context"
	"fmt"

	"github.com/studysesh/study-sesh/internal/adapter"
	"github.com/studysesh/study-sesh/internal/client"
	"github.com/studysesh/study-sesh/internal/config"
	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/internal/store"
	"github.com/studysesh/study-sesh/internal/tui"
	"github.com/studysesh/study-sesh/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("study-sesh-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	doneStore, err := store.NewDoneStore(context.Background(), cfg.Storage.SQLitePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() { _ = doneStore.Close() }()

	services := service.NewClientServices(serverAdapter, doneStore, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
