// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/models"
)

// psql builds PostgreSQL-flavoured queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. Each entry is applied in its own transaction: the
// current version is read with a row lock, checked against the entry's
// BaseVersion, and the row is inserted or updated accordingly.
type entityRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityRepository] backed by the provided
// database connection and logger.
func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	logger.Debug().Msg("creating entity repository")
	return &entityRepository{
		db:     db,
		logger: logger,
	}
}

// ApplyEntry implements [EntityRepository].
func (r *entityRepository) ApplyEntry(ctx context.Context, userID int64, entry models.CommitEntry) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.ApplyEntry").Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRowContext(ctx, getEntityVersion, userID, entry.ClientSideID).Scan(&current)

	var newVersion int64
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if entry.BaseVersion != 0 {
			return 0, ErrVersionConflict
		}
		newVersion = 1
		if err := r.insertEntity(ctx, tx, userID, entry, newVersion); err != nil {
			return 0, err
		}

	case err != nil:
		log.Err(err).Str("func", "*entityRepository.ApplyEntry").Msg("error reading entity version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)

	default:
		if current != entry.BaseVersion {
			return 0, ErrVersionConflict
		}
		newVersion = current + 1
		if err := r.updateEntity(ctx, tx, userID, entry, newVersion); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*entityRepository.ApplyEntry").Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return newVersion, nil
}

func (r *entityRepository) insertEntity(ctx context.Context, tx *sql.Tx, userID int64, entry models.CommitEntry, version int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("entities").
		Columns("user_id", "client_side_id", "data_type", "name", "specifics", "version", "deleted", "updated_at").
		Values(userID, entry.ClientSideID, entry.Type, entry.Name, entry.Specifics, version, entry.Deleted, entry.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.insertEntity").Str("client_side_id", entry.ClientSideID).Msg("error inserting entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrEntityNotSaved
	}

	return nil
}

func (r *entityRepository) updateEntity(ctx context.Context, tx *sql.Tx, userID int64, entry models.CommitEntry, version int64) error {
	log := logger.FromContext(ctx)

	builder := psql.
		Update("entities").
		Set("version", version).
		Set("deleted", entry.Deleted).
		Set("updated_at", entry.UpdatedAt).
		Where(sq.Eq{"user_id": userID, "client_side_id": entry.ClientSideID})

	// A tombstone carries no payload; keep the last known name and specifics.
	if !entry.Deleted {
		builder = builder.
			Set("name", entry.Name).
			Set("specifics", entry.Specifics)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.updateEntity").Str("client_side_id", entry.ClientSideID).Msg("error updating entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrEntityNotSaved
	}

	return nil
}
