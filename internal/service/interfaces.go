package service

import (
	"context"

	"github.com/mkarev/vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification and JWT
// lifecycle on the server.
type AuthService interface {
	// RegisterUser creates a new account from the client-derived credential
	// bundle (auth hash, encryption salt, wrapped master key).
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the auth hash for the given login and returns the
	// stored account record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Params returns the public key-derivation parameters (the encryption
	// salt) stored for a login, so a client can derive its auth hash before
	// calling Login.
	Params(ctx context.Context, user models.User) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CommitService applies one batch of client changes to the server store and
// reports a per-entry outcome.
type CommitService interface {
	// Commit applies req.Entries in order, key metadata first, and returns
	// one [models.CommitResult] per entry. A version mismatch on one entry
	// does not abort the rest of the batch.
	Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error)
}
