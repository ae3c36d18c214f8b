// Package matching turns a matching analysis into a scorecard and a narrative summary.
package matching

import "strings"

// MatchLevel is the categorical coverage of a single domain.
type MatchLevel string

const (
	LevelComplete     MatchLevel = "complete"
	LevelPartial      MatchLevel = "partial"
	LevelIncompatible MatchLevel = "incompatible"
)

// ParseMatchLevel normalizes the level reported upstream. The French
// spellings used by older analysis payloads are accepted. Anything else is
// kept verbatim so that it falls out of every bucket.
func ParseMatchLevel(s string) MatchLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete", "complet":
		return LevelComplete
	case "partial", "partiel":
		return LevelPartial
	case "incompatible":
		return LevelIncompatible
	default:
		return MatchLevel(s)
	}
}

type ExperienceRecord struct {
	Period string `json:"period"`
}

type DomainAssessment struct {
	Name     string     `json:"domain_name"`
	Weight   int        `json:"weight_percent"`
	Score    int        `json:"score"`
	ScoreMax int        `json:"score_max"`
	Level    MatchLevel `json:"match_level"`
	Comment  string     `json:"comment"`
}

// Analysis is the matching result produced once per analysis run.
type Analysis struct {
	OverallScore     int                `json:"overall_score"`
	Domains          []DomainAssessment `json:"domain_assessments"`
	NarrativeSummary string             `json:"narrative_summary,omitempty"`
	Strengths        []string           `json:"strengths,omitempty"`
}

// Summary is derived from an Analysis and never stored.
type Summary struct {
	TotalYears int      `json:"total_years"`
	Tier       Tier     `json:"score_tier"`
	Strong     []string `json:"strong_domains"`
	Partial    []string `json:"partial_domains"`
	Missing    []string `json:"missing_domains"`
	Text       string   `json:"summary"`
	// Fallback reports whether Text was composed locally.
	Fallback bool `json:"fallback"`
}
