package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides_MissingFileIsNotAnError(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestLoadOverrides_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := "MAX_DEGREE: 4\nRSSI_THRESHOLD: -70\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	require.NotNil(t, overrides)
	require.NotNil(t, overrides.MaxDegree)
	assert.Equal(t, 4, *overrides.MaxDegree)
	require.NotNil(t, overrides.RSSIThreshold)
	assert.Equal(t, -70, *overrides.RSSIThreshold)
}

func TestGetDefaultConfigPath_HonoursEnvVar(t *testing.T) {
	t.Setenv("MESHPLAN_CONFIG_PATH", "/tmp/custom-planner.yaml")
	assert.Equal(t, "/tmp/custom-planner.yaml", GetDefaultConfigPath())
}

func TestGetDefaultConfigPath_FallsBackToWorkingDirectory(t *testing.T) {
	t.Setenv("MESHPLAN_CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "config", "planner.yaml"), GetDefaultConfigPath())
}
