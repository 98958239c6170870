// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Skills Matrix API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - SessionHandler: session lifecycle, allocation edits, submission
  - CatalogHandler: skill catalog and point budget constants
  - AdminHandler: password-gated response listing and dashboard summary

	sessionHandler := handlers.NewSessionHandler(mgr, pipe, cfg)

# Session Flow

A submitter holds one session, identified by the X-Session-Token header:

	POST /sessions                      → Create (returns session_token)
	GET  /sessions/me                   → GetState (points, total, ceilings, tiers)
	PUT  /sessions/allocations/{skill}  → SetAllocation
	POST /sessions/submit               → Submit (terminal on success)

Rejected submits leave the session editable with the allocation intact;
an accepted submit seals the session.

# Error Mapping

Domain errors map onto HTTP statuses:

	ledger.ErrUnknownSkill        → 404
	ledger.ErrOutOfRange          → 400
	ledger.ErrBudgetExceeded      → 409
	validate.ErrEmptyIdentity     → 400
	validate.ErrTotalMismatch     → 409
	validate.ErrDuplicateSubmitter→ 409
	session.ErrAlreadySubmitted   → 409
	session.ErrPersistence        → 500 (retryable)

# Admin Dashboard

Admin operations require the X-Admin-Password header, compared in
constant time against the configured secret:

	GET /admin/responses → full stored records with humanized ages
	GET /admin/summary   → per-skill totals, means, and tier counts
*/
package handlers
