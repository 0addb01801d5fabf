package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side entity identifiers. Version 7 UUIDs
// are preferred because their time-ordered prefix keeps inserts into the
// pending queue roughly sequential.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to a random v4 if the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
