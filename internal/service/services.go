package service

import (
	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/store"
)

type Services struct {
	AuthService   AuthService
	CommitService CommitService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repos.UserRepository, cfg.App, logger),
		CommitService: NewCommitService(repos.EntityRepository, logger),
	}
}
