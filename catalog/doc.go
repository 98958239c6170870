// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog provides the fixed skill catalog shared by all sessions.

The catalog is an ordered list of unique skill names, loaded once at
startup and immutable for the lifetime of the process. Every ledger,
every stored response column set, and the admin dashboard all derive
their skill ordering from it.

# Loading

From a YAML file:

	cat, err := catalog.Load("skills.yaml")

File format:

	skills:
	  - Commercial Contracts
	  - Corporate Governance

Or the built-in default:

	cat := catalog.Default()

# Validation

New rejects empty catalogs, blank names, and duplicates with the
sentinel errors ErrEmptyCatalog, ErrBlankSkill, and ErrDuplicateSkill.
*/
package catalog
