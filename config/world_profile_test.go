package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing profile: %v", err)
	}
	return path
}

func TestLoadWorldProfile(t *testing.T) {
	t.Run("Empty path yields defaults", func(t *testing.T) {
		profile, err := LoadWorldProfile("")
		assert.NoError(t, err)
		assert.Equal(t, 4, profile.Side)
		assert.InDelta(t, 0.2, *profile.PitProbability, 1e-9)
		assert.Equal(t, 1000, profile.MaxAttempts)
	})

	t.Run("Partial file keeps defaults", func(t *testing.T) {
		profile, err := LoadWorldProfile(writeProfile(t, "side: 6\n"))
		assert.NoError(t, err)
		assert.Equal(t, 6, profile.Side)
		assert.InDelta(t, 0.2, *profile.PitProbability, 1e-9)
	})

	t.Run("Zero pit probability is honoured", func(t *testing.T) {
		profile, err := LoadWorldProfile(writeProfile(t, "pit_probability: 0\nmax_attempts: 50\n"))
		assert.NoError(t, err)
		assert.Zero(t, *profile.PitProbability)
		assert.Equal(t, 50, profile.MaxAttempts)
	})

	t.Run("Out of range probability", func(t *testing.T) {
		_, err := LoadWorldProfile(writeProfile(t, "pit_probability: 1.5\n"))
		assert.ErrorIs(t, err, ErrInvalidWorldProfile)
	})

	t.Run("Side outside the generator range", func(t *testing.T) {
		for _, content := range []string{"side: 2\n", "side: 99\n", "side: -4\n"} {
			_, err := LoadWorldProfile(writeProfile(t, content))
			assert.ErrorIs(t, err, ErrInvalidWorldProfile, content)
		}
	})

	t.Run("Boundary sides", func(t *testing.T) {
		for _, content := range []string{"side: 3\n", "side: 32\n"} {
			_, err := LoadWorldProfile(writeProfile(t, content))
			assert.NoError(t, err, content)
		}
	})

	t.Run("Malformed yaml", func(t *testing.T) {
		_, err := LoadWorldProfile(writeProfile(t, "side: [4\n"))
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadWorldProfile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("WUMPUS_TEST_INT", "12")
	t.Setenv("WUMPUS_TEST_BAD_INT", "twelve")
	t.Setenv("WUMPUS_TEST_BOOL", "true")

	assert.Equal(t, "fallback", getEnvWithDefault("WUMPUS_TEST_UNSET", "fallback"))
	assert.Equal(t, 12, getEnvAsIntWithDefault("WUMPUS_TEST_INT", 3))
	assert.Equal(t, 3, getEnvAsIntWithDefault("WUMPUS_TEST_BAD_INT", 3))
	assert.True(t, getEnvAsBoolWithDefault("WUMPUS_TEST_BOOL", false))
	assert.False(t, getEnvAsBoolWithDefault("WUMPUS_TEST_UNSET", false))
}
