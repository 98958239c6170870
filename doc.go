// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Skills Matrix API server.

Skills Matrix is a points-allocation survey: each submitter distributes a
90-point budget across a fixed catalog of skills (at most 10 points per
skill) and submits one labeled response, which is appended to a CSV
response store and aggregated in a password-gated admin dashboard.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 8090 -s responses.csv --admin-password ...

# Configuration

Required settings:

  - ADMIN_PASSWORD (--admin-password): Shared secret for the admin dashboard

Optional settings:

  - PORT (-p): Server port (default: 8090)
  - STORE_PATH (-s): Response store CSV path (default: responses.csv)
  - CATALOG_PATH (-c): Skill catalog YAML; built-in catalog when unset
  - EXEMPT_EMAIL (--exempt-email): Test address exempt from the duplicate check
  - SMTP_ADDR, SMTP_USERNAME, SMTP_PASSWORD, NOTIFY_FROM, NOTIFY_TO:
    outbound notification of accepted responses

# Architecture

The server uses a handler-based architecture with dependency injection:

  - catalog: fixed skill catalog (YAML or built-in)
  - ledger: per-session points allocation with budget enforcement
  - validate: stateless pre-submission checks
  - scoring: expertise tier classification and dashboard aggregation
  - store: append-only CSV response store with unique-email constraint
  - session: session manager and submission pipeline
  - notify: best-effort SMTP delivery of accepted responses
  - handlers: HTTP request handlers (sessions, catalog, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: token generation and the admin gate
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
