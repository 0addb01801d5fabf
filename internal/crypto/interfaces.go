package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, the database, or users; its
// single job is generating and protecting keys.
//
// Key flow:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()   (step 1)
//	KEK       = GenerateKEK(password, salt)                (step 2)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)                  (step 3)
//	AuthHash  = GenerateAuthHash(KEK, authSalt)            (step 4)
type KeyChainService interface {
	// GenerateEncryptionSalt generates a random 16-byte salt. The salt is
	// not a secret and is stored on the server in the clear; it exists so
	// that identical passwords derive different KEKs.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK generates the random 32-byte data-encryption key. The
	// DEK encrypts all vault data and never leaves the client in the clear.
	GenerateDEK() ([]byte, error)

	// GenerateKEK derives the key-encryption key from the master password
	// and salt via Argon2id. The KEK exists only in client memory.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// GetEncryptedDEK wraps the DEK with the KEK via AES-GCM. The result
	// (nonce ‖ ciphertext) is safe to store on the server: without the KEK
	// it is indistinguishable from random noise.
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// GenerateAuthHash produces the login credential the server stores:
	// SHA-256(KEK ‖ authSalt). The server can compare it but cannot invert
	// it back into the KEK.
	GenerateAuthHash(KEK []byte, authSalt string) []byte

	// DecryptDEK unwraps the encrypted DEK using the KEK.
	// It expects the input blob to be in the format: nonce ‖ ciphertext.
	// Returns the original DEK or an error if authentication fails
	// (e.g. wrong password and therefore wrong KEK).
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)

	// EncryptData serializes the given value to JSON and encrypts it with
	// the DEK. Returns a base64-encoded blob (nonce ‖ ciphertext) safe to
	// store on the server.
	EncryptData(data any, DEK []byte) (string, error)

	// DecryptData decrypts a base64-encoded blob with the DEK and
	// unmarshals the result into the target pointer (same contract as
	// json.Unmarshal).
	DecryptData(encryptedB64 string, DEK []byte, target any) error
}
