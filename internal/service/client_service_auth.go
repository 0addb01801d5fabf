package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/mkarev/vault-sync/internal/adapter"
	"github.com/mkarev/vault-sync/internal/crypto"
	"github.com/mkarev/vault-sync/internal/store"
	"github.com/mkarev/vault-sync/internal/utils"
	"github.com/mkarev/vault-sync/models"
)

// authSalt is mixed into the auth hash so the login credential differs from
// any key material derived from the same KEK.
var authSalt = "vault-sync-auth-salt-v1"

type clientAuthService struct {
	pending store.PendingChangeRepository
	adapter adapter.ServerAdapter
	crypto  crypto.KeyChainService
	ids     *utils.UUIDGenerator
}

func NewClientAuthService(pending store.PendingChangeRepository, serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService) ClientAuthService {
	return &clientAuthService{
		pending: pending,
		adapter: serverAdapter,
		crypto:  keyChain,
		ids:     utils.NewUUIDGenerator(),
	}
}

// Register implements ClientAuthService.
func (a *clientAuthService) Register(ctx context.Context, login, name, masterPassword string) (int64, []byte, error) {
	salt, err := a.crypto.GenerateEncryptionSalt()
	if err != nil {
		return 0, nil, fmt.Errorf("error generating salt: %w", err)
	}

	dek, err := a.crypto.GenerateDEK()
	if err != nil {
		return 0, nil, fmt.Errorf("error generating DEK: %w", err)
	}

	kek := a.crypto.GenerateKEK(masterPassword, salt)

	encryptedDek, err := a.crypto.GetEncryptedDEK(dek, kek)
	if err != nil {
		return 0, nil, fmt.Errorf("error encrypting DEK: %w", err)
	}

	user := models.User{
		Login:              login,
		Name:               name,
		AuthHash:           base64.StdEncoding.EncodeToString(a.crypto.GenerateAuthHash(kek, authSalt)),
		EncryptionSalt:     salt,
		EncryptedMasterKey: encryptedDek,
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err := a.enqueueKeyBag(ctx, registered.UserID, salt, encryptedDek); err != nil {
		return 0, nil, err
	}

	return registered.UserID, dek, nil
}

// Login implements ClientAuthService.
func (a *clientAuthService) Login(ctx context.Context, login, masterPassword string) (int64, []byte, error) {
	salt, err := a.adapter.RequestSalt(ctx, login)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	kek := a.crypto.GenerateKEK(masterPassword, salt)

	user := models.User{
		Login:    login,
		AuthHash: base64.StdEncoding.EncodeToString(a.crypto.GenerateAuthHash(kek, authSalt)),
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	dek, err := a.crypto.DecryptDEK(found.EncryptedMasterKey, kek)
	if err != nil {
		return 0, nil, fmt.Errorf("decrypt DEK: %w", err)
	}

	return found.UserID, dek, nil
}

// enqueueKeyBag queues the freshly generated key bag as a pending
// key-metadata change so the first commit cycle uploads it before any data
// encrypted under it.
func (a *clientAuthService) enqueueKeyBag(ctx context.Context, userID int64, salt, encryptedDek []byte) error {
	bag := crypto.KeyBag{
		Version:        1,
		EncryptionSalt: salt,
		EncryptedDEK:   encryptedDek,
	}

	specifics, err := bag.Marshal()
	if err != nil {
		return fmt.Errorf("marshal key bag: %w", err)
	}

	entry := models.CommitEntry{
		ClientSideID: a.ids.Generate(),
		Type:         models.Nigori,
		Name:         "keybag",
		Specifics:    specifics,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := a.pending.Enqueue(ctx, userID, entry); err != nil {
		return fmt.Errorf("enqueue key bag: %w", err)
	}

	return nil
}
