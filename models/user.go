package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// AuthHash is the authentication hash derived on the client from the
	// master password. The server stores and compares only this value;
	// the master password itself never leaves the client.
	AuthHash string `json:"auth_hash"`

	// EncryptionSalt is the per-account salt used by the client to derive
	// the key-encryption key from the master password.
	EncryptionSalt []byte `json:"encryption_salt"`

	// EncryptedMasterKey is the account data-encryption key wrapped with
	// the key-encryption key. Opaque to the server.
	EncryptedMasterKey []byte `json:"encrypted_master_key"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
