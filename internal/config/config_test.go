package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Storage.DBPath)
	assert.Equal(t, "Local", cfg.Timezone)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty db path",
			mutate: func(c *Config) { c.Storage.DBPath = "" },
		},
		{
			name:   "bad timezone",
			mutate: func(c *Config) { c.Timezone = "Not/AZone" },
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  db_path: /tmp/test-tasktally.db
timezone: UTC
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-tasktally.db", cfg.Storage.DBPath)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset file values keep their defaults.
	assert.Equal(t, Default().Logging.File, cfg.Logging.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timezone: UTC\n"), 0644))

	t.Setenv("TASKTALLY_TIMEZONE", "Europe/London")
	t.Setenv("TASKTALLY_DB", "/tmp/env-tasktally.db")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", cfg.Timezone)
	assert.Equal(t, "/tmp/env-tasktally.db", cfg.Storage.DBPath)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not a map"), 0644))

	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}
