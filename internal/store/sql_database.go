package store

import (
	"database/sql"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
