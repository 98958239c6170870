// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/skills-matrix/catalog"
)

// Point budget constants. TotalMax is the budget a submitter distributes
// across the whole catalog; PerSkillMax caps any single skill.
const (
	TotalMax    = 90
	PerSkillMax = 10
)

var (
	ErrUnknownSkill      = errors.New("unknown skill")
	ErrOutOfRange        = errors.New("points out of range")
	ErrBudgetExceeded    = errors.New("total point budget exceeded")
	ErrBudgetUnreachable = errors.New("catalog too small to reach total budget")
)

// ValidateCatalog checks that a full allocation is possible: with every
// skill capped at PerSkillMax, the catalog must hold enough skills to
// absorb TotalMax. A catalog that fails this check would reject every
// submission with a total mismatch, so callers should refuse it at
// startup.
func ValidateCatalog(cat *catalog.Catalog) error {
	if cat.Len()*PerSkillMax < TotalMax {
		return fmt.Errorf("%w: %d skills at %d points each cap the total at %d, need %d",
			ErrBudgetUnreachable, cat.Len(), PerSkillMax, cat.Len()*PerSkillMax, TotalMax)
	}
	return nil
}

// Ledger holds one session's in-progress allocation of points to skills.
// It is owned by a single session; callers serialize access through the
// session lock.
type Ledger struct {
	cat    *catalog.Catalog
	points map[string]int
}

// New returns a ledger with every skill in the catalog at 0 points.
func New(cat *catalog.Catalog) *Ledger {
	points := make(map[string]int, cat.Len())
	for _, name := range cat.Names() {
		points[name] = 0
	}
	return &Ledger{cat: cat, points: points}
}

// Get returns the points currently allocated to skill.
func (l *Ledger) Get(skill string) (int, error) {
	if !l.cat.Has(skill) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
	}
	return l.points[skill], nil
}

// Set allocates points to skill. It fails with ErrOutOfRange when points
// is outside [0, PerSkillMax], and with ErrBudgetExceeded when applying
// the new value would push the total above TotalMax. On failure the
// ledger is unchanged.
func (l *Ledger) Set(skill string, points int) error {
	if !l.cat.Has(skill) {
		return fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
	}
	if points < 0 || points > PerSkillMax {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, points, PerSkillMax)
	}

	// The ceiling depends on every other field, so it is recomputed on
	// each mutation rather than cached.
	ceiling := l.ceiling(skill)
	if points > ceiling {
		return fmt.Errorf("%w: %d points for %q exceeds remaining budget (ceiling %d)",
			ErrBudgetExceeded, points, skill, ceiling)
	}

	l.points[skill] = points
	return nil
}

// Total returns the sum of all allocated points. Always a fold over the
// current field values, never an incrementally tracked counter.
func (l *Ledger) Total() int {
	total := 0
	for _, v := range l.points {
		total += v
	}
	return total
}

// Remaining returns the unallocated portion of the budget.
func (l *Ledger) Remaining() int {
	return TotalMax - l.Total()
}

// Ceiling returns the maximum value currently assignable to skill:
// min(PerSkillMax, TotalMax - sum of all other fields).
func (l *Ledger) Ceiling(skill string) (int, error) {
	if !l.cat.Has(skill) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
	}
	return l.ceiling(skill), nil
}

func (l *Ledger) ceiling(skill string) int {
	ceiling := TotalMax - (l.Total() - l.points[skill])
	if ceiling > PerSkillMax {
		ceiling = PerSkillMax
	}
	return ceiling
}

// Reset returns every skill to 0 points.
func (l *Ledger) Reset() {
	for name := range l.points {
		l.points[name] = 0
	}
}

// Snapshot returns a copy of the current allocation.
func (l *Ledger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.points))
	for name, v := range l.points {
		out[name] = v
	}
	return out
}

// Skills returns the skill names in catalog order.
func (l *Ledger) Skills() []string {
	return l.cat.Names()
}
