package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"

	"github.com/mkarev/vault-sync/models"
)

// PendingChangeRepository is the client-side queue of local mutations that
// have not yet been acknowledged by the server. Rows live in the local SQLite
// database and are keyed by (user_id, client_side_id); re-enqueueing a change
// for the same entity replaces the queued row.
type PendingChangeRepository interface {
	// Enqueue stores local changes awaiting commit. An existing pending row
	// for the same entity is overwritten with the newer change.
	Enqueue(ctx context.Context, userID int64, entries ...models.CommitEntry) error

	// GetPending returns up to limit queued changes of the given type in
	// enqueue order. A limit <= 0 returns an empty slice.
	GetPending(ctx context.Context, userID int64, dataType models.DataType, limit int) ([]models.CommitEntry, error)

	// MarkCommitted processes per-entry commit results: successfully
	// committed rows are removed from the queue. Conflicted and failed rows
	// stay queued so a later cycle can retry them after the next update
	// download resolves the divergence.
	MarkCommitted(ctx context.Context, userID int64, results ...models.CommitResult) error

	// PendingTypes reports the set of data types that currently have at
	// least one queued change for the user.
	PendingTypes(ctx context.Context, userID int64) (models.DataTypeSet, error)
}
