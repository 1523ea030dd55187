package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GenerateRunID creates a short, human-readable simulation run ID.
// Format: run-{seed}-{8charHexUUID}
//
// Example:
//   - Input: seed=42
//   - Output: "run-42-a3f8e2b1"
func GenerateRunID(seed int64) string {
	return "run-" + strconv.FormatInt(seed, 10) + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
