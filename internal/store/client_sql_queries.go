// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package store

const (
	createPendingChangesTable = `
		CREATE TABLE IF NOT EXISTS pending_changes (
			user_id        INTEGER NOT NULL,
			client_side_id TEXT    NOT NULL,
			data_type      INTEGER NOT NULL,
			name           TEXT    NOT NULL DEFAULT '',
			specifics      BLOB,
			base_version   INTEGER NOT NULL DEFAULT 0,
			deleted        INTEGER NOT NULL DEFAULT 0,
			updated_at     TIMESTAMP NOT NULL,
			enqueued_at    INTEGER NOT NULL,
			PRIMARY KEY (user_id, client_side_id)
		);`

	enqueuePendingChange = `
		INSERT INTO pending_changes (
			user_id,
			client_side_id,
			data_type,
			name,
			specifics,
			base_version,
			deleted,
			updated_at,
			enqueued_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, client_side_id) DO UPDATE SET
			data_type    = excluded.data_type,
			name         = excluded.name,
			specifics    = excluded.specifics,
			base_version = excluded.base_version,
			deleted      = excluded.deleted,
			updated_at   = excluded.updated_at,
			enqueued_at  = excluded.enqueued_at;`

	getPendingChanges = `
		SELECT client_side_id, data_type, name, specifics, base_version, deleted, updated_at
		FROM pending_changes
		WHERE user_id = ? AND data_type = ?
		ORDER BY enqueued_at, client_side_id
		LIMIT ?;`

	deletePendingChange = `
		DELETE FROM pending_changes
		WHERE user_id = ? AND client_side_id = ?;`

	getPendingTypes = `
		SELECT DISTINCT data_type
		FROM pending_changes
		WHERE user_id = ?;`
)
