package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("  from-file\n"), 0o600))
	t.Setenv("CV_MATCHER_TEST_KEY", "from-env")

	secret, err := Load(Source{Name: "api key", File: path, Env: "CV_MATCHER_TEST_KEY", Value: "inline"})
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)
}

func TestLoadFallsBackToEnvThenValue(t *testing.T) {
	t.Setenv("CV_MATCHER_TEST_KEY", " from-env ")

	secret, err := Load(Source{Env: "CV_MATCHER_TEST_KEY", Value: "inline"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret)

	t.Setenv("CV_MATCHER_TEST_KEY", "")
	secret, err = Load(Source{Env: "CV_MATCHER_TEST_KEY", Value: " inline "})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))

	_, err := Load(Source{Name: "gemini api key", File: empty})
	assert.ErrorContains(t, err, "is empty")

	_, err = Load(Source{Name: "gemini api key", File: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorContains(t, err, "reading gemini api key from file")

	t.Setenv("CV_MATCHER_TEST_KEY", "")
	_, err = Load(Source{Name: "gemini api key", Env: "CV_MATCHER_TEST_KEY"})
	assert.EqualError(t, err, "gemini api key is not configured (checked $CV_MATCHER_TEST_KEY)")

	_, err = Load(Source{})
	assert.EqualError(t, err, "secret is not configured")
}
