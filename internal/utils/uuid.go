package utils

import "github.com/google/uuid"

// UUIDGenerator issues history record ids. V7 ids sort by creation time,
// which keeps the operations primary key append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7, or a random v4 when v7 cannot be built.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
