package kernel

import (
	"github.com/google/uuid"
)

// UUIDGenerator produces random (version 4) UUID strings. Orders and order
// lines treat the result as an opaque identifier.
//
// Example:
//
//	gen := kernel.NewUUIDGenerator()
//	orderID := gen.Generate() // e.g. "550e8400-e29b-41d4-a716-446655440000"
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUIDGenerator.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// Generate returns a new random UUID in its canonical string form.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
