// Package token generates the opaque secrets and one-time codes used by the
// verification and password-reset flows. Opaque tokens are never persisted
// directly; only their SHA-256 digest is stored.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

const opaqueTokenBytes = 32

// NewOpaque returns a hex-encoded token built from 32 bytes of
// cryptographically secure randomness (64 hex characters).
func NewOpaque() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate opaque token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash returns the hex-encoded SHA-256 digest of s. Opaque tokens and signed
// refresh tokens are high-entropy, so a fast digest is sufficient here; user
// passwords go through bcrypt instead.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// NewOTP returns a 6-digit numeric code uniformly distributed over
// [100000, 999999].
func NewOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
