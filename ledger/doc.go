// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the per-session points-allocation ledger.

A Ledger maps every skill in the catalog to an integer point value and
enforces both caps at the input boundary:

  - PerSkillMax (10): no single skill may hold more.
  - TotalMax (90): the sum across all skills may never exceed the budget,
    so the effective ceiling for one skill shrinks as others fill up.

# Usage

	l := ledger.New(cat)
	err := l.Set("Commercial Contracts", 8)   // ok, total 8
	err = l.Set("Corporate Governance", 11)   // ErrOutOfRange
	ceil, _ := l.Ceiling("Corporate Governance")

Total is always recomputed as a sum over the current field values. An
earlier revision of the form tracked the total as a separately mutated
counter and drifted from the fields; the fold avoids that class of bug.

# Errors

	ErrUnknownSkill   - skill not in the catalog
	ErrOutOfRange     - value outside [0, PerSkillMax]
	ErrBudgetExceeded - value would push the total past TotalMax

All errors leave the ledger unchanged.
*/
package ledger
