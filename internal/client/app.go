package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/service"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	cfg      config.ClientConfig

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("no client services provided")
	}

	return &App{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run authenticates the account and keeps the background sync job running
// until the process receives a stop signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	userID, err := a.authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	a.logger.Info().Int64("userID", userID).Msg("authenticated, starting sync")

	syncWorker := newSyncWorker(ctx, a.services.SyncJob, userID, a.cfg.Workers.SyncInterval)
	workers.NewWorkers(syncWorker).Run()

	<-ctx.Done()
	a.services.SyncJob.Stop()

	a.logger.Info().Msg("client stopped")

	return nil
}

// authenticate logs the account in with the credentials from the
// environment, registering it first if the login does not exist yet.
func (a *App) authenticate(ctx context.Context) (int64, error) {
	login := os.Getenv("VAULT_SYNC_LOGIN")
	password := os.Getenv("VAULT_SYNC_PASSWORD")
	if login == "" || password == "" {
		return 0, errors.New("VAULT_SYNC_LOGIN and VAULT_SYNC_PASSWORD must be set")
	}

	userID, _, err := a.services.AuthService.Login(ctx, login, password)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return 0, err
	}

	a.logger.Info().Str("login", login).Msg("login not found, registering")

	name := os.Getenv("VAULT_SYNC_NAME")
	if name == "" {
		name = login
	}

	userID, _, err = a.services.AuthService.Register(ctx, login, name, password)
	if err != nil {
		return 0, err
	}

	return userID, nil
}
