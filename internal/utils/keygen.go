package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateToken generates a random token with the given prefix.
// Format: prefix_randomhex
// Example: ps_reset_a1b2c3d4e5f6...
func GenerateToken(prefix string) (string, error) {
	b := make([]byte, 32) // 64 char hex
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b)), nil
}

// GenerateResetToken generates a password reset token: ps_reset_xxx
func GenerateResetToken() (string, error) {
	return GenerateToken("ps_reset")
}
