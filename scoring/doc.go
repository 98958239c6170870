// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring classifies point values into expertise tiers and
aggregates stored responses for the admin dashboard.

# Tiers

	8-10 → primary
	3-7  → secondary
	1-2  → limited
	0    → none

Classify is the single source of truth for these thresholds; the per-field
indicator on the form and the dashboard tier counts both call it.

# Aggregation

	rows := scoring.Summarize(records, cat.Names())

Summarize produces one SkillSummary per catalog skill (total, mean, tier
counts) ranked by total points descending.
*/
package scoring
