// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/skills-matrix/ledger"
)

var (
	ErrEmptyIdentity      = errors.New("submitter email and name are required")
	ErrTotalMismatch      = errors.New("allocated total does not match the point budget")
	ErrDuplicateSubmitter = errors.New("a response from this email already exists")
)

// EmailIndex reports whether an email already has a stored response.
type EmailIndex interface {
	HasEmail(email string) (bool, error)
}

// ForSubmit runs the pre-submission checks against an allocation snapshot.
// Points are integers throughout, so the total check is exact equality
// with no epsilon.
func ForSubmit(points map[string]int, email, name string, idx EmailIndex, exemptEmail string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		return ErrEmptyIdentity
	}

	total := 0
	for _, v := range points {
		total += v
	}
	if total != ledger.TotalMax {
		return fmt.Errorf("%w: allocated %d of %d", ErrTotalMismatch, total, ledger.TotalMax)
	}

	if !EmailsEqual(email, exemptEmail) {
		seen, err := idx.HasEmail(email)
		if err != nil {
			return fmt.Errorf("failed to check for existing response: %w", err)
		}
		if seen {
			return fmt.Errorf("%w: %s", ErrDuplicateSubmitter, email)
		}
	}

	return nil
}

// EmailsEqual compares two addresses case-insensitively, ignoring
// surrounding whitespace.
func EmailsEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
