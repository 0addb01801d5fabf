package service

import (
	"github.com/mkarev/vault-sync/internal/adapter"
	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/crypto"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	CommitService ClientCommitService
	SyncJob       ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	keyChain := crypto.NewKeyChainService()
	authSvc := NewClientAuthService(localStore.PendingChanges, serverAdapter, keyChain)
	commitSvc := NewClientCommitService(localStore.PendingChanges, serverAdapter, cfg.Commit.MaxEntries, logger)

	return &ClientServices{
		AuthService:   authSvc,
		CommitService: commitSvc,
		SyncJob:       NewClientSyncJob(commitSvc),
	}
}
