package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidClientSideID = errors.New("invalid client side id")
	ErrInvalidDataType     = errors.New("invalid data type")
	ErrEmptyEntries        = errors.New("entries list cannot be empty")
	ErrInvalidBaseVersion  = errors.New("invalid base version")
)
