// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// ResponseIDBytes gives 8 hex characters, a 16^8 ID space. Submission
// volume is tiny (one response per submitter), so this is plenty.
const ResponseIDBytes = 4

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateResponseID creates the opaque token stamped on a stored response.
func GenerateResponseID() (string, error) {
	return GenerateID(ResponseIDBytes)
}

// CheckAdminPassword compares the provided password against the shared
// admin secret in constant time.
func CheckAdminPassword(got, want string) error {
	if want == "" || !hmac.Equal([]byte(got), []byte(want)) {
		return ErrInvalidPassword
	}
	return nil
}
