// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package crypto

import (
	"encoding/json"
	"fmt"
)

// KeyBag is the encryption-key metadata committed under the Nigori data
// type. It carries everything another device needs to unlock the vault
// after entering the master password: the key-derivation salt and the
// wrapped data-encryption key. The DEK itself is present only in encrypted
// form, so the bag is safe to transmit and store server-side.
type KeyBag struct {
	// Version increments on every key rotation.
	Version int `json:"version"`

	// EncryptionSalt is the Argon2id salt for KEK derivation.
	EncryptionSalt []byte `json:"encryption_salt"`

	// EncryptedDEK is the DEK wrapped with the KEK (nonce ‖ ciphertext).
	EncryptedDEK []byte `json:"encrypted_dek"`
}

// Marshal serializes the key bag into the byte form carried by a Nigori
// commit entry's specifics.
func (b KeyBag) Marshal() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal key bag: %w", err)
	}
	return data, nil
}

// UnmarshalKeyBag parses the specifics of a Nigori commit entry back into a
// [KeyBag].
func UnmarshalKeyBag(data []byte) (KeyBag, error) {
	var b KeyBag
	if err := json.Unmarshal(data, &b); err != nil {
		return KeyBag{}, fmt.Errorf("unmarshal key bag: %w", err)
	}
	return b, nil
}
