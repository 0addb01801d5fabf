// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package models

import "time"

// CommitEntry is one pending local change queued for upload to the server.
// The payload is opaque to the sync layer: Specifics carries the encrypted
// entity bytes and is decrypted only by the owning client.
type CommitEntry struct {
	// ClientSideID is the client-generated UUID that identifies the entity
	// across devices. Stable for the lifetime of the entity.
	ClientSideID string `json:"client_side_id"`

	// Type is the data type the entry belongs to.
	Type DataType `json:"type"`

	// Name is a non-sensitive display name used in logs and conflict
	// diagnostics. Never contains decrypted payload data.
	Name string `json:"name"`

	// Specifics is the encrypted entity payload, ready for transmission.
	Specifics []byte `json:"specifics"`

	// BaseVersion is the server version this change was made against.
	// Zero for entities the server has never seen.
	BaseVersion int64 `json:"base_version"`

	// Deleted marks the entry as a tombstone: the server should soft-delete
	// the entity instead of updating its payload.
	Deleted bool `json:"deleted"`

	// UpdatedAt is the local modification timestamp of the change.
	UpdatedAt time.Time `json:"updated_at"`
}

// CommitRequest is one commit batch sent by the client. Entries preserve the
// gathering order produced by the commit batch scheduler; Nigori entries, if
// present, are never mixed with entries of any other type.
type CommitRequest struct {
	// UserID is the owner of the vault being committed.
	UserID int64 `json:"user_id"`

	// Entries is the batch of pending changes, in gathering order.
	Entries []CommitEntry `json:"entries"`

	// Length is the total number of entries, provided so the server can
	// validate the request without iterating the slice.
	Length int `json:"length"`
}

// CommitStatus is the per-entry outcome of a commit batch.
type CommitStatus string

const (
	// CommitStatusSuccess means the entry was persisted and assigned a new
	// server version.
	CommitStatusSuccess CommitStatus = "success"

	// CommitStatusConflict means the entry's BaseVersion no longer matches
	// the server's version: another device committed in between. The entry
	// stays pending on the client and is retried in a later cycle.
	CommitStatusConflict CommitStatus = "conflict"

	// CommitStatusTransientError means the server failed to persist the
	// entry for a reason unrelated to its content (e.g. a retryable
	// database error). The client may retry the entry unchanged.
	CommitStatusTransientError CommitStatus = "transient_error"
)

// CommitResult reports the server-side outcome for a single committed entry.
type CommitResult struct {
	// ClientSideID echoes the entry's identifier.
	ClientSideID string `json:"client_side_id"`

	// Status is the outcome of applying the entry.
	Status CommitStatus `json:"status"`

	// Version is the new server version of the entity. Populated only when
	// Status is [CommitStatusSuccess].
	Version int64 `json:"version"`
}

// CommitResponse is the server's answer to a [CommitRequest]. Results appear
// in the same order as the request entries.
type CommitResponse struct {
	// Results holds one outcome per request entry.
	Results []CommitResult `json:"results"`

	// Length is the total number of results.
	Length int `json:"length"`
}
