package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test; t.Setenv registers the
// restore before the variable is dropped.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "NUTRITION_DEBUG", "NUTRITION_PROTEIN_ACTIVITY", "NUTRITION_WATER_FACTOR", "NUTRITION_PROFILE")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "moderate", cfg.ProteinActivity)
	assert.Equal(t, 1.0, cfg.WaterFactor)
	assert.Empty(t, cfg.ProfilePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NUTRITION_DEBUG", "true")
	t.Setenv("NUTRITION_PROTEIN_ACTIVITY", "intense")
	t.Setenv("NUTRITION_WATER_FACTOR", "1.5")
	unsetEnv(t, "NUTRITION_PROFILE")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "intense", cfg.ProteinActivity)
	assert.Equal(t, 1.5, cfg.WaterFactor)
}

// TestLoad_DotEnvFile checks that the file fills in unset variables but never
// overrides ones already in the environment.
func TestLoad_DotEnvFile(t *testing.T) {
	unsetEnv(t, "NUTRITION_DEBUG", "NUTRITION_WATER_FACTOR", "NUTRITION_PROFILE")
	t.Setenv("NUTRITION_PROTEIN_ACTIVITY", "light")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NUTRITION_PROTEIN_ACTIVITY=intense\nNUTRITION_WATER_FACTOR=2.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.ProteinActivity)
	assert.Equal(t, 2.0, cfg.WaterFactor)
}

func TestLoad_BadValue(t *testing.T) {
	unsetEnv(t, "NUTRITION_DEBUG")
	t.Setenv("NUTRITION_WATER_FACTOR", "lots")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	body := "weight_kg: 70\nheight_m: 1.75\nage: 30\ngender: male\nactivity_level: moderate\nprotein_activity: intense\nwater_factor: 1.5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, Profile{
		WeightKg:        70,
		HeightM:         1.75,
		Age:             30,
		Gender:          "male",
		ActivityLevel:   "moderate",
		ProteinActivity: "intense",
		WaterFactor:     1.5,
	}, p)
}

func TestLoadProfile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, Profile{}, p)
}

func TestLoadProfile_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wieght_kg: 70\n"), 0o644))

	_, err := LoadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile")
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
