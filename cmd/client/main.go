package main

import (
	"fmt"

	"github.com/mkarev/vault-sync/internal/adapter"
	"github.com/mkarev/vault-sync/internal/client"
	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/service"
	"github.com/mkarev/vault-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewClientLogger("vault-sync-client", cfg.LogPath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, *cfg, log)

	app, err := client.NewApp(services, *cfg, log)
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
