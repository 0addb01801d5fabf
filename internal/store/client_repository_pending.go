package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/models"
)

// pendingChangeRepository is the SQLite-backed implementation of
// [PendingChangeRepository]. The table is created lazily at construction so
// a fresh client database is usable without a separate migration step.
type pendingChangeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPendingChangeRepository constructs a [PendingChangeRepository] on top of
// the provided SQLite connection, creating the pending_changes table if it
// does not exist yet.
func NewPendingChangeRepository(db *DB, logger *logger.Logger) (PendingChangeRepository, error) {
	if _, err := db.Exec(createPendingChangesTable); err != nil {
		logger.Err(err).Str("func", "NewPendingChangeRepository").Msg("error creating pending_changes table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	logger.Debug().Msg("creating pending change repository")
	return &pendingChangeRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Enqueue implements [PendingChangeRepository]. All entries are written in a
// single transaction so a partially stored batch never survives a crash.
func (r *pendingChangeRepository) Enqueue(ctx context.Context, userID int64, entries ...models.CommitEntry) error {
	if len(entries) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.Enqueue").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := time.Now().UnixNano()
	for i, entry := range entries {
		_, err := tx.ExecContext(ctx, enqueuePendingChange,
			userID, entry.ClientSideID, entry.Type, entry.Name, entry.Specifics,
			entry.BaseVersion, entry.Deleted, entry.UpdatedAt, now+int64(i))
		if err != nil {
			log.Err(err).Str("func", "*pendingChangeRepository.Enqueue").Str("client_side_id", entry.ClientSideID).Msg("error enqueueing pending change")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.Enqueue").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetPending implements [PendingChangeRepository].
func (r *pendingChangeRepository) GetPending(ctx context.Context, userID int64, dataType models.DataType, limit int) ([]models.CommitEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPendingChanges, userID, dataType, limit)
	if err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.GetPending").Msg("error querying pending changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.CommitEntry
	for rows.Next() {
		var entry models.CommitEntry
		err := rows.Scan(&entry.ClientSideID, &entry.Type, &entry.Name, &entry.Specifics, &entry.BaseVersion, &entry.Deleted, &entry.UpdatedAt)
		if err != nil {
			log.Err(err).Str("func", "*pendingChangeRepository.GetPending").Msg("error scanning pending change")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// MarkCommitted implements [PendingChangeRepository].
func (r *pendingChangeRepository) MarkCommitted(ctx context.Context, userID int64, results ...models.CommitResult) error {
	if len(results) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.MarkCommitted").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, result := range results {
		if result.Status != models.CommitStatusSuccess {
			continue
		}
		if _, err := tx.ExecContext(ctx, deletePendingChange, userID, result.ClientSideID); err != nil {
			log.Err(err).Str("func", "*pendingChangeRepository.MarkCommitted").Str("client_side_id", result.ClientSideID).Msg("error deleting committed change")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.MarkCommitted").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// PendingTypes implements [PendingChangeRepository].
func (r *pendingChangeRepository) PendingTypes(ctx context.Context, userID int64) (models.DataTypeSet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPendingTypes, userID)
	if err != nil {
		log.Err(err).Str("func", "*pendingChangeRepository.PendingTypes").Msg("error querying pending types")
		return models.DataTypeSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var types models.DataTypeSet
	for rows.Next() {
		var dataType models.DataType
		if err := rows.Scan(&dataType); err != nil {
			return models.DataTypeSet{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		types = types.Add(dataType)
	}
	if err := rows.Err(); err != nil {
		return models.DataTypeSet{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}
