package store

import (
	"context"
	"fmt"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
)

// Repositories groups the server-side repositories into a single value that
// can be passed around the service layer.
type Repositories struct {
	UserRepository   UserRepository
	EntityRepository EntityRepository
}

// NewRepositories initialises the server storage layer: it opens the
// PostgreSQL connection, runs pending schema migrations and constructs the
// repositories on top of the shared connection.
func NewRepositories(cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating repositories...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:   NewUserRepository(db, log),
		EntityRepository: NewEntityRepository(db, log),
	}, nil
}
