// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session ties a per-user allocation ledger to a lifecycle and runs
the submission pipeline.

# Sessions

Each session is created with an all-zero ledger and an opaque token:

	mgr := session.NewManager(cat)
	s := mgr.Create()
	err := s.Set("Commercial Contracts", 8)

A session is in one of two states: editing (the retry loop: edits and
rejected submits keep it here) and submitted (terminal; every further Set
or Submit fails with ErrAlreadySubmitted).

# Submission

	pipe := session.NewPipeline(st, notifier, exemptEmail)
	rec, notified, err := pipe.Submit(s, email, name)

The transition order is fixed: validate → append to the store → notify →
reset the ledger and seal the session. Persistence must be confirmed
before the ledger is touched, so a store failure (ErrPersistence) leaves
the allocation intact for a retry. Notification runs after the append and
can only degrade the notified flag, never the submission.
*/
package session
