package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the pieces both sides of the API actually need: the
// parsed claims for the server and the compact signed form for the wire.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Never serialized; only the compact string form leaves the process.
	*jwt.Token `json:"-"`

	// RegisteredClaims is the standard RFC 7519 claim set
	// (sub, exp, iat, nbf, iss, aud, jti).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token
	// (base64url header.payload.signature). Use [Token.String] to read it.
	SignedString string `json:"-"`

	// UserID caches the account identifier parsed from the "sub" claim so
	// request handling does not re-parse it on every access.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64, caches the result in
// UserID and returns it.
//
// Returns an error if the subject claim is missing, empty, or not numeric.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	t.UserID = userID

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
