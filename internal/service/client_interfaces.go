package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication. Implementations are responsible for key derivation and for
// communicating with the remote server adapter.
type ClientAuthService interface {
	// Register creates a new account on the server. It derives a
	// key-encryption key (KEK) from the master password, generates a
	// data-encryption key (DEK), encrypts the DEK with the KEK, and persists
	// the resulting credential bundle on the server. The key bag is also
	// queued as a pending key-metadata change so the first commit cycle
	// uploads it to the sync store.
	// Returns the server-assigned user ID and the plaintext DEK.
	Register(ctx context.Context, login, name, masterPassword string) (userID int64, encryptionKey []byte, err error)

	// Login authenticates the user against the server. It fetches the
	// account's encryption salt, derives the KEK, computes the auth hash,
	// retrieves the encrypted DEK from the server and decrypts it.
	// Returns the server-assigned user ID and the plaintext DEK.
	Login(ctx context.Context, login, masterPassword string) (userID int64, encryptionKey []byte, err error)
}

// ClientCommitService drains the local pending-change queue to the server in
// bounded batches.
type ClientCommitService interface {
	// RunCommitCycle gathers pending local changes into capped batches and
	// commits them until the queue is drained or no further progress can be
	// made (every remaining entry conflicted or failed). Returns the number
	// of entries the server acknowledged as committed.
	RunCommitCycle(ctx context.Context, userID int64) (int, error)
}

// ClientSyncJob defines the contract for a background worker that periodically
// runs a commit cycle for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background goroutine. It runs a commit cycle every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
