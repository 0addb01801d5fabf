package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mkarev/vault-sync/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	// Returns [ErrLoginAlreadyExists] when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin looks up an account by its login.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// EntityRepository applies committed sync entries to the server-side entity
// table with optimistic version checks.
type EntityRepository interface {
	// ApplyEntry persists a single commit entry for the given user and
	// returns the new server version of the entity.
	//
	// An entry with BaseVersion 0 is treated as a creation; any other
	// BaseVersion must match the stored version exactly, otherwise
	// [ErrVersionConflict] is returned and nothing is written.
	ApplyEntry(ctx context.Context, userID int64, entry models.CommitEntry) (int64, error)
}
