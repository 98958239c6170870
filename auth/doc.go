// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and the admin access gate.

# Tokens

GenerateID creates random hex IDs from crypto/rand:

	id, err := auth.GenerateID(4) // 8 hex chars

GenerateResponseID is the fixed-width variant used for stored responses.

# Admin Gate

The reporting view is protected by a single shared secret. CheckAdminPassword
compares in constant time and returns ErrInvalidPassword on mismatch or
when no secret is configured.
*/
package auth
