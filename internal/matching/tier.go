package matching

import "encoding/json"

// Tier is a qualitative band of the overall score.
type Tier int

const (
	TierWeak Tier = iota
	TierModerate
	TierGood
	TierStrong
	TierExcellent
)

var tierLabels = map[Tier]string{
	TierExcellent: "Excellent match",
	TierStrong:    "Strong match",
	TierGood:      "Good match",
	TierModerate:  "Moderate match",
	TierWeak:      "Weak match",
}

// ClassifyScore maps an overall score to its tier. The score is not clamped.
func ClassifyScore(score int) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 80:
		return TierStrong
	case score >= 70:
		return TierGood
	case score >= 60:
		return TierModerate
	default:
		return TierWeak
	}
}

func (t Tier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return tierLabels[TierWeak]
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
