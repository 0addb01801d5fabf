// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package store

const (
	createUser = `INSERT INTO users (login, name, auth_hash, encryption_salt, encrypted_master_key)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, name, auth_hash, encryption_salt, encrypted_master_key, created_at;`

	findUserByLogin = `SELECT user_id, login, name, auth_hash, encryption_salt, encrypted_master_key, created_at
    FROM users
    WHERE login = $1;`

	// getEntityVersion locks the entity row for the duration of the commit
	// transaction so that concurrent commits from two devices serialize on
	// the version check.
	getEntityVersion = `SELECT version
		FROM entities
		WHERE user_id = $1 AND client_side_id = $2
		FOR UPDATE;`
)
