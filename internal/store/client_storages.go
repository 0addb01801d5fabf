package store

import (
	"context"
	"fmt"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// PendingChanges is the SQLite-backed queue of local mutations awaiting
	// commit to the server.
	PendingChanges PendingChangeRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens an SQLite connection to the file path in
// cfg.DB.DSN, creating the database file if it does not yet exist, and wires
// a fresh [PendingChangeRepository] on top of it.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	pending, err := NewPendingChangeRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("pending change repository error: %w", err)
	}

	return &ClientStorages{
		PendingChanges: pending,
	}, nil
}
