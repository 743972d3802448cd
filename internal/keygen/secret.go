// filepath: internal/keygen/secret.go
package keygen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"envkeygen/internal/shared"
)

// DefaultLength is the number of random bytes in a key (256 bits, 64 hex chars).
const DefaultLength = 32

// GenerateSecret creates a cryptographically secure random string of
// 2*byteLength lowercase hex characters.
func GenerateSecret(byteLength int) (string, error) {
	return generateFrom(rand.Reader, byteLength)
}

func generateFrom(source io.Reader, byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", fmt.Errorf("got %d: %w", byteLength, shared.ErrInvalidLength)
	}
	bytes := make([]byte, byteLength)
	if _, err := io.ReadFull(source, bytes); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrRandomSource, err)
	}
	return hex.EncodeToString(bytes), nil
}
