// Copyright (c) 2026 Glowlab. All rights reserved.

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// # Opaque Tokens

// GenerateSecureToken returns a hex-encoded random token of byteLength
// entropy bytes, suitable for refresh and reset tokens.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate token: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}

// HashToken returns the SHA-256 digest of an opaque token.
//
// Refresh tokens are stored hashed so that a leaked session store does not
// yield usable credentials. SHA-256 is enough here; the input is already
// high-entropy, so bcrypt-style stretching buys nothing.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
