package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(HomeEnv, home)
	t.Setenv(APIKeyEnv, "")
	t.Setenv(BaseURLEnv, "")
	t.Setenv(ModelEnv, "")
	return home
}

func TestLoadConfig_CreatesDefaultProfile(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
	assert.False(t, cfg.IsValid())
	assert.Empty(t, cfg.GetModel())

	info, err := os.Stat(filepath.Join(home, ".lofistudio", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfig_EnvOverridesProfile(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Profiles[DefaultProfile] = Profile{APIKey: "file-key", Model: "file-model", BaseURL: "http://file"}
	require.NoError(t, cfg.Save())

	t.Setenv(APIKeyEnv, " env-key ")
	t.Setenv(ModelEnv, "env-model")

	cfg, err = LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.GetAPIKey())
	assert.Equal(t, "env-model", cfg.GetModel())
	assert.Equal(t, "http://file", cfg.GetBaseURL())
	assert.True(t, cfg.IsValid())
}

func TestLoadConfig_EnvKeyIsNotPersisted(t *testing.T) {
	home := isolate(t)
	t.Setenv(APIKeyEnv, "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(home, ".lofistudio", "config.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestLoadConfig_UnknownActiveProfileFallsBack(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.ActiveProfile = "gone"
	cfg.Profiles["work"] = Profile{APIKey: "work-key"}
	require.NoError(t, cfg.Save())

	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
}

func TestNew(t *testing.T) {
	cfg := New("test", Profile{APIKey: "k", Model: "m"})

	assert.True(t, cfg.IsValid())
	assert.Equal(t, "k", cfg.GetAPIKey())
	assert.Equal(t, "m", cfg.GetModel())
	assert.Empty(t, cfg.GetBaseURL())

	cfg.OverrideModel("  ")
	assert.Equal(t, "m", cfg.GetModel())
	cfg.OverrideModel("other")
	assert.Equal(t, "other", cfg.GetModel())
}

func TestUseProfile(t *testing.T) {
	cfg := New("a", Profile{APIKey: "a-key"})
	cfg.Profiles["b"] = Profile{APIKey: "b-key"}

	require.NoError(t, cfg.UseProfile("b"))
	assert.Equal(t, "b-key", cfg.GetAPIKey())

	assert.Error(t, cfg.UseProfile("missing"))
	assert.Equal(t, "b", cfg.ActiveProfile)
}

func TestNew_EmptyKeyIsInvalid(t *testing.T) {
	cfg := New("blank", Profile{APIKey: "   "})
	assert.False(t, cfg.IsValid())
}
