package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns prefix followed by the first n hex characters of a
// random UUID.
func GenerateID(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return prefix + hex[:n]
}

func GenerateRequestID(prefix string) string {
	return prefix + uuid.NewString()
}
