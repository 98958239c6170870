// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate holds the stateless pre-submission checks.

ForSubmit takes an allocation snapshot plus the submitter identity and
rejects with one of:

	ErrEmptyIdentity      - blank email or name
	ErrTotalMismatch      - total != ledger.TotalMax (exact; points are integers)
	ErrDuplicateSubmitter - email already present in the store

The configured exempt email (a test bypass) may submit any number of
times. Duplicate detection here is advisory; the store re-checks under
its own lock when appending, which is what actually closes the
check-then-append race between concurrent submitters.
*/
package validate
