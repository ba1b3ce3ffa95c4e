package util

import (
	"github.com/google/uuid"
)

// NewPlayerID returns a fresh opaque player identifier
func NewPlayerID() string {
	return uuid.New().String()
}
