package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyScore(t *testing.T) {
	t.Parallel()

	ranges := []struct {
		from, to int
		want     string
	}{
		{90, 100, "Excellent match"},
		{80, 89, "Strong match"},
		{70, 79, "Good match"},
		{60, 69, "Moderate match"},
		{0, 59, "Weak match"},
	}

	for _, r := range ranges {
		for score := r.from; score <= r.to; score++ {
			assert.Equal(t, r.want, ClassifyScore(score).String(), "score %d", score)
		}
	}
}

func TestClassifyScoreIsNotClamped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TierExcellent, ClassifyScore(140))
	assert.Equal(t, TierWeak, ClassifyScore(-5))
}

func TestTierMarshalsAsLabel(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]Tier{"tier": TierGood})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"Good match"}`, string(data))
}
