// Package config provides configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	assert.Equal(t, "~/.modforge/modules", cfg.ModulesDir)
	assert.Equal(t, "~", cfg.OutputDir)
	assert.Equal(t, "~/.modforge/module_urls.yaml", cfg.ManifestFile)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Equal(t, time.Second, cfg.Fetch.RetryDelay)
	assert.Equal(t, 2*time.Minute, cfg.Fetch.CloneTimeout)

	assert.Contains(t, cfg.AlwaysInclude, "main")
	assert.Contains(t, cfg.AlwaysInclude, "utils")
	assert.Equal(t, []string{"main", "gitignore", "start", "install"}, cfg.UnpackFolders)
}

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	cfg := (&Config{ModulesDir: "/custom/modules"}).WithDefaults()

	assert.Equal(t, "/custom/modules", cfg.ModulesDir)
	assert.Equal(t, "~", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	assert.NotEmpty(t, cfg.AlwaysInclude)
}

func TestLoader_LoadsFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `modulesDir: /opt/modules
outputDir: /opt/programs
fetch:
  workers: 8
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	cfg, err := NewLoader().LoadWithDefaults(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/opt/modules", cfg.ModulesDir)
	assert.Equal(t, "/opt/programs", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Fetch.Workers)
	// Unset fields come from defaults.
	assert.Equal(t, 3, cfg.Fetch.Retries)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Fetch.Workers)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("modulesDir: /from/file\n"), 0o644))

	t.Setenv("MODFORGE_MODULES_DIR", "/from/env")

	cfg, err := NewLoader().LoadWithDefaults(configFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ModulesDir)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.modforge")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".modforge"), got)

	got, err = ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)
}
