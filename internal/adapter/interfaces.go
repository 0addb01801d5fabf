// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karev

// Package adapter provides transport-layer abstractions for communicating with
// the vault-sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mkarev/vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault-sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the client-derived
	// credentials (auth hash, encryption salt, wrapped master key). On
	// success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.LoginResponse, error)

	// RequestSalt fetches the encryption salt that was stored for login
	// during registration. The salt is needed to derive the KEK before the
	// auth hash can be computed for Login.
	RequestSalt(ctx context.Context, login string) ([]byte, error)

	// Login authenticates the user with the server using the pre-computed
	// auth hash. On success it stores the returned bearer token via SetToken
	// and returns the server-side account record, including the encrypted
	// master key.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Commit sends one batch of gathered changes to the server and returns
	// the per-entry results. A transport integrity hash covering the payload
	// is attached automatically. Requires a valid bearer token.
	Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error)
}
