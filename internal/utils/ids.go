package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRandomHex returns a new random uuid as 32 hex characters (no dashes)
func NewRandomHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
