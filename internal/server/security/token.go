package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// resetTokenBytes gives 256 bits of entropy per token.
const resetTokenBytes = 32

// NewResetToken returns an opaque, URL-safe reset token from a
// cryptographically secure source. Uniqueness is overwhelming by entropy;
// the store's primary key catches the astronomically unlikely collision.
func NewResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
