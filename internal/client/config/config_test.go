package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.NotEmpty(t, c.PlaceholderCoverURL)
}

func TestLoadConfig_DefaultsThenFlags(t *testing.T) {
	origArgs, origPath := os.Args, defaultConfigPath
	t.Cleanup(func() { os.Args, defaultConfigPath = origArgs, origPath })

	defaultConfigPath = filepath.Join(t.TempDir(), "absent.json")
	os.Args = []string{"gametracker", "-a", "http://catalog:9000"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://catalog:9000", cfg.ServerBaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
