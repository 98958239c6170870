// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"sort"

	"github.com/danielhkuo/skills-matrix/models"
)

// Tier is the derived expertise classification of an allocated point value.
type Tier string

const (
	TierNone      Tier = "none"
	TierLimited   Tier = "limited"
	TierSecondary Tier = "secondary"
	TierPrimary   Tier = "primary"
)

// Classification thresholds. Shared by the live form and the admin
// dashboard, so they must only ever live here.
const (
	primaryMin   = 8
	secondaryMin = 3
	limitedMin   = 1
)

// Classify maps a point value to its expertise tier:
// 8-10 primary, 3-7 secondary, 1-2 limited, 0 none.
func Classify(points int) Tier {
	switch {
	case points >= primaryMin:
		return TierPrimary
	case points >= secondaryMin:
		return TierSecondary
	case points >= limitedMin:
		return TierLimited
	default:
		return TierNone
	}
}

// SkillSummary is the aggregate dashboard row for one skill.
type SkillSummary struct {
	Skill          string  `json:"skill"`
	Total          int     `json:"total"`
	Mean           float64 `json:"mean"`
	PrimaryCount   int     `json:"primary_count"`
	SecondaryCount int     `json:"secondary_count"`
	LimitedCount   int     `json:"limited_count"`
	Rank           int     `json:"rank"` // 1-indexed
}

// Summarize computes per-skill aggregates over all stored responses.
// Skills absent from a response count as 0 points. Rows are ranked by
// total points descending, with skill name as a stable tiebreaker.
func Summarize(records []models.Response, skills []string) []SkillSummary {
	summaries := make([]SkillSummary, 0, len(skills))

	for _, skill := range skills {
		s := SkillSummary{Skill: skill}
		for _, rec := range records {
			points := rec.Points[skill]
			s.Total += points
			switch Classify(points) {
			case TierPrimary:
				s.PrimaryCount++
			case TierSecondary:
				s.SecondaryCount++
			case TierLimited:
				s.LimitedCount++
			}
		}
		if len(records) > 0 {
			s.Mean = float64(s.Total) / float64(len(records))
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Skill < b.Skill
	})

	for i := range summaries {
		summaries[i].Rank = i + 1
	}

	return summaries
}
