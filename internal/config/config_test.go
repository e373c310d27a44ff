package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 50, cfg.History.Size)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
api:
  url: "http://dict.local:8080/"
history:
  enabled: false
  size: 5
logging:
  level: debug
`)

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://dict.local:8080", cfg.API.URL)
	assert.True(t, cfg.IsConfigured())
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 5, cfg.History.Size)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "api:\n  url: http://file\n")
	t.Setenv("LEXI_API_URL", "http://env:9000")
	t.Setenv("LEXI_HISTORY_SIZE", "7")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:9000", cfg.API.URL)
	assert.Equal(t, 7, cfg.History.Size)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), "api: [unclosed\n")
	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewLoader(path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	cfg.API.URL = "http://saved:1234"
	cfg.History.Size = 12

	written, err := loader.Save(cfg)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	reloaded, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://saved:1234", reloaded.API.URL)
	assert.Equal(t, 12, reloaded.History.Size)
}
