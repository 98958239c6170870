// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8090)
  - StorePath: Response store CSV path (default: responses.csv)
  - CatalogPath: Skill catalog YAML path (optional; built-in catalog when empty)
  - AdminPassword: Shared secret for the admin dashboard (required)
  - ExemptEmail: Email exempt from the duplicate-submission check
  - SMTPAddr/SMTPUsername/SMTPPassword/NotifyFrom/NotifyTo: outbound mail

# CLI Flags

	-p               Server port
	-s               Response store path
	-c               Catalog path
	--admin-password Admin password
	--exempt-email   Exempt email

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_PATH     → -s
	CATALOG_PATH   → -c
	ADMIN_PASSWORD → --admin-password
	EXEMPT_EMAIL   → --exempt-email

SMTP settings are environment-only: SMTP_ADDR, SMTP_USERNAME,
SMTP_PASSWORD, NOTIFY_FROM, NOTIFY_TO. Notification is disabled when
SMTP_ADDR is unset.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if ADMIN_PASSWORD is missing.
*/
package cliparse
