package main

import (
	"fmt"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/handler"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/server"
	"github.com/mkarev/vault-sync/internal/service"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	utils.InitHasherPool(cfg.App.HashKey)

	repos, err := store.NewRepositories(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repos, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
