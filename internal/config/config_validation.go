// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Server-side requirements are deliberately not enforced here because the
// same merged config backs the client runtime, which legitimately leaves
// the server groups empty. The server entrypoint fails fast on its own when
// a required value (address, DSN) is missing.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Commit.MaxEntries <= 0 {
		return ErrInvalidCommitConfigs
	}

	return nil
}
