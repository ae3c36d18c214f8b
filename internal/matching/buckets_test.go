package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketize(t *testing.T) {
	t.Parallel()

	buckets := Bucketize([]DomainAssessment{
		{Name: "d1", Level: LevelComplete},
		{Name: "d2", Level: LevelPartial},
		{Name: "d3", Level: LevelIncompatible},
	})

	assert.Equal(t, []string{"d1"}, buckets.Strong)
	assert.Equal(t, []string{"d2"}, buckets.Partial)
	assert.Equal(t, []string{"d3"}, buckets.Missing)
}

func TestBucketizeKeepsOrderAndDropsUnknown(t *testing.T) {
	t.Parallel()

	buckets := Bucketize([]DomainAssessment{
		{Name: "Go", Level: LevelComplete},
		{Name: "Mystery", Level: MatchLevel("unknown")},
		{Name: "Kubernetes", Level: MatchLevel("complet")},
		{Name: "Terraform", Level: MatchLevel("partiel")},
		{Name: "Blank"},
	})

	assert.Equal(t, []string{"Go", "Kubernetes"}, buckets.Strong)
	assert.Equal(t, []string{"Terraform"}, buckets.Partial)
	assert.Empty(t, buckets.Missing)
}

func TestParseMatchLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LevelComplete, ParseMatchLevel(" Complet "))
	assert.Equal(t, LevelPartial, ParseMatchLevel("partial"))
	assert.Equal(t, LevelIncompatible, ParseMatchLevel("INCOMPATIBLE"))
	assert.Equal(t, MatchLevel("other"), ParseMatchLevel("other"))
}
