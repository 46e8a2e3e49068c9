package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	claimTokenBytes = 32 // 64 hex chars
	authTokenBytes  = 24 // 48 hex chars
)

// NewClaimToken generates the unguessable capability string that grants
// the bearer the right to claim one payout. Not derivable from the
// payout ID or any other public field.
func NewClaimToken() (string, error) {
	return randomHex(claimTokenBytes)
}

// NewAuthToken generates a one-time magic-link token (48 hex chars).
func NewAuthToken() (string, error) {
	return randomHex(authTokenBytes)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
