package matching

import (
	"fmt"
	"strconv"
)

const (
	defaultCandidateName = "Candidate"
	maxNameLength        = 20
	shortNameLength      = 17
	maxKeyStrengths      = 5
)

// Candidate is the parsed resume data the scorecard needs.
type Candidate struct {
	FullName    string             `json:"full_name,omitempty"`
	Experiences []ExperienceRecord `json:"experiences,omitempty"`
}

// DomainRow is one line of the weighting table.
type DomainRow struct {
	Domain  string     `json:"domain"`
	Weight  string     `json:"weight"`
	Score   string     `json:"score"`
	Comment string     `json:"comment"`
	Level   MatchLevel `json:"match_level"`
}

// Scorecard is everything the results view shows for one analysis run.
type Scorecard struct {
	Score        string      `json:"score"`
	Candidate    string      `json:"candidate"`
	Years        string      `json:"years_of_experience"`
	Rows         []DomainRow `json:"domains,omitempty"`
	Summary      Summary     `json:"summary"`
	KeyStrengths []string    `json:"key_strengths,omitempty"`
}

// BuildScorecard summarizes the analysis and formats it for display.
// commentLength <= 0 selects DefaultCommentLength.
func (s *Summarizer) BuildScorecard(candidate Candidate, analysis Analysis, commentLength int) Scorecard {
	if commentLength <= 0 {
		commentLength = DefaultCommentLength
	}

	summary := s.Summarize(analysis, candidate.Experiences)

	card := Scorecard{
		Score:     fmt.Sprintf("%d/100", analysis.OverallScore),
		Candidate: DisplayName(candidate.FullName),
		Years:     "N/A",
		Summary:   summary,
	}
	if summary.TotalYears > 0 {
		card.Years = fmt.Sprintf("%d years", summary.TotalYears)
	}

	for _, d := range analysis.Domains {
		card.Rows = append(card.Rows, DomainRow{
			Domain:  levelIcon(d.Level) + " " + d.Name,
			Weight:  strconv.Itoa(d.Weight) + "%",
			Score:   fmt.Sprintf("%d/%d", d.Score, d.ScoreMax),
			Comment: TruncateComment(d.Comment, commentLength),
			Level:   d.Level,
		})
	}

	strengths := analysis.Strengths
	if len(strengths) > maxKeyStrengths {
		strengths = strengths[:maxKeyStrengths]
	}
	for i, strength := range strengths {
		card.KeyStrengths = append(card.KeyStrengths, fmt.Sprintf("%d. %s", i+1, strength))
	}

	return card
}

// DisplayName shortens long candidate names for the score header.
func DisplayName(name string) string {
	if name == "" {
		return defaultCandidateName
	}
	runes := []rune(name)
	if len(runes) < maxNameLength {
		return name
	}
	return string(runes[:shortNameLength]) + "..."
}

func levelIcon(level MatchLevel) string {
	switch ParseMatchLevel(string(level)) {
	case LevelIncompatible:
		return "❌"
	case LevelPartial:
		return "⚠️"
	default:
		return "✅"
	}
}
