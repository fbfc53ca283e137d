package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for stored files and
// request trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 when the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s is a canonical UUID string.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
