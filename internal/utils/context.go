// Package utils provides general-purpose helpers shared across the
// application: typed context keys, request body hashing, JSON response
// writing, and JWT generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated account identifier in a request
// context. Write with context.WithValue(ctx, utils.UserIDCtxKey, int64(...)),
// read with [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the account identifier set by the auth
// middleware. The flag reports whether the value is present and an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
