// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

package service

import (
	"errors"

	"github.com/mkarev/vault-sync/internal/adapter"
	"github.com/mkarev/vault-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error so callers never need to inspect HTTP status semantics.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongPassword

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoUserWasFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrVersionConflict
	}

	return err
}
