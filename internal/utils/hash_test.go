// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/mkarev/vault-sync/models"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	if expected := h.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHash_WithCommitRequestBody(t *testing.T) {
	InitHasherPool(testHashKey)

	req := models.CommitRequest{
		UserID: 7,
		Entries: []models.CommitEntry{{
			ClientSideID: "11111111-2222-3333-4444-555555555555",
			Type:         models.Passwords,
			Name:         "work login",
			Specifics:    []byte("encrypted-blob"),
			BaseVersion:  3,
		}},
		Length: 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal commit request: %v", err)
	}

	got := hex.EncodeToString(Hash(body))

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)
	if want := hex.EncodeToString(mac.Sum(nil)); got != want {
		t.Errorf("hash mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHash_DifferentInputsAndKeys(t *testing.T) {
	InitHasherPool(testHashKey)
	hash1 := hex.EncodeToString(Hash([]byte("payload-one")))
	hash2 := hex.EncodeToString(Hash([]byte("payload-two")))
	if hash1 == hash2 {
		t.Error("different inputs must produce different hashes")
	}

	InitHasherPool("another-key")
	hash3 := hex.EncodeToString(Hash([]byte("payload-one")))
	if hash1 == hash3 {
		t.Error("different keys must produce different hashes for the same input")
	}
}

func TestHashString_MatchesDirectHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("abc"))
	want := hex.EncodeToString(mac.Sum(nil))

	if got := HashString("abc", testHashKey); got != want {
		t.Errorf("HashString mismatch: got %s want %s", got, want)
	}
}
