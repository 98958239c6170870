// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the durable, append-only response store backed
by a CSV file.

# Layout

One header row, then one row per stored response:

	response_id,timestamp,email,name,<skill columns in catalog order>

Timestamps are RFC3339. Skill cells are integer points; rows never change
after being appended.

# Schema Reconciliation

The skill catalog can change between deployments. When Open finds a file
whose skill columns differ from the current catalog, it rewrites the file
once with the union of both column sets and fills missing cells with 0,
so old responses survive a catalog change and round-trip exactly.

# Uniqueness

Append holds the store lock across both the duplicate-email check and the
write. Two concurrent submissions with the same email therefore serialize,
and the second fails with ErrDuplicateEmail. The configured exempt email
bypasses the constraint.
*/
package store
