package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "formpages.log"), cfg.LogFile)
	assert.True(t, cfg.Persist)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 16, cfg.MaxTabName)
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.LogFile = filepath.Join(dir, "app.log")
	cfg.Persist = false
	cfg.LogLevel = "DEBUG"
	cfg.MaxTabName = 99

	require.NoError(t, SaveConfig(dir, cfg))
	_, err := os.Stat(ConfigPath(dir))
	require.NoError(t, err)

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.False(t, loaded.Persist)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, maxTabName, loaded.MaxTabName)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FORMPAGES_PERSIST", "false")
	t.Setenv("FORMPAGES_MAX_TAB_NAME", "2")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Persist)
	assert.Equal(t, minTabName, cfg.MaxTabName)
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(ConfigPath(dir), []byte("{not json"), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}
