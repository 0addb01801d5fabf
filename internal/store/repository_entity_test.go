package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/models"
)

func newTestEntityRepo(t *testing.T) (*entityRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &entityRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testEntry(baseVersion int64) models.CommitEntry {
	return models.CommitEntry{
		ClientSideID: "11111111-1111-1111-1111-111111111111",
		Type:         models.Bookmarks,
		Name:         "enc-name",
		Specifics:    []byte{0xAA, 0xBB},
		BaseVersion:  baseVersion,
		UpdatedAt:    time.Now(),
	}
}

func TestApplyEntry_CreatesNewEntity(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entry := testEntry(0)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version").
		WithArgs(int64(42), entry.ClientSideID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO entities").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	version, err := repo.ApplyEntry(context.Background(), 42, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version 1 for a created entity, got %d", version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestApplyEntry_UpdatesMatchingVersion(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entry := testEntry(3)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version").
		WithArgs(int64(42), entry.ClientSideID).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(3))
	mock.ExpectExec("UPDATE entities").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	version, err := repo.ApplyEntry(context.Background(), 42, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 4 {
		t.Errorf("expected version to advance to 4, got %d", version)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestApplyEntry_StaleBaseVersionConflicts(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entry := testEntry(2)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version").
		WithArgs(int64(42), entry.ClientSideID).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(5))
	mock.ExpectRollback()

	_, err := repo.ApplyEntry(context.Background(), 42, entry)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestApplyEntry_CreationAgainstExistingRowConflicts(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	// BaseVersion != 0 but no row exists: the client is updating an entity
	// the server never saw, which is also a conflict.
	entry := testEntry(9)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version").
		WithArgs(int64(42), entry.ClientSideID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.ApplyEntry(context.Background(), 42, entry)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestApplyEntry_TombstoneKeepsPayload(t *testing.T) {
	repo, mock, db := newTestEntityRepo(t)
	defer db.Close()

	entry := testEntry(1)
	entry.Deleted = true
	entry.Name = ""
	entry.Specifics = nil

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT version").
		WithArgs(int64(42), entry.ClientSideID).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	// The UPDATE for a tombstone must not touch name or specifics.
	mock.ExpectExec(`UPDATE entities SET version = \$\d+, deleted = \$\d+, updated_at = \$\d+ WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	version, err := repo.ApplyEntry(context.Background(), 42, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
}
