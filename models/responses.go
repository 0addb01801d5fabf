package models

// LoginResponse is returned by the server after successful authentication.
// It carries everything the client needs to start a sync session: the bearer
// token for subsequent requests and the encrypted key material required to
// unlock the local vault.
type LoginResponse struct {
	// UserID is the server-side identifier of the authenticated account.
	UserID int64 `json:"user_id"`

	// Token is the signed JWT the client must present on every
	// authenticated request.
	Token string `json:"token"`

	// EncryptionSalt is the per-account key-derivation salt.
	EncryptionSalt []byte `json:"encryption_salt"`

	// EncryptedMasterKey is the wrapped data-encryption key.
	EncryptedMasterKey []byte `json:"encrypted_master_key"`
}
