package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "gametracker.db", c.DatabaseDSN)
	assert.Equal(t, "memory", c.CacheType)
	assert.Equal(t, 5*time.Minute, c.CacheTTL)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestDialect(t *testing.T) {
	assert.Equal(t, dbx.Postgres, (&Config{DBDriver: "postgresql"}).Dialect())
	assert.Equal(t, dbx.SQLite, (&Config{DBDriver: "sqlite"}).Dialect())
	assert.Equal(t, dbx.SQLite, (&Config{DBDriver: "oracle"}).Dialect())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs, origEnv := os.Args, envFile
	t.Cleanup(func() { os.Args, envFile = origArgs, origEnv })
	envFile = t.TempDir() + "/missing.env"

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"listen_addr":  ":7000",
		"database_dsn": "from-json.db",
		"log_level":    "debug",
	})
	t.Setenv("GAMETRACKER_DATABASE_DSN", "from-env.db")
	t.Setenv("GAMETRACKER_LOG_LEVEL", "warn")
	os.Args = []string{"server", "-c", path, "-l", "error"}

	c := LoadConfig()
	require.NotNil(t, c)

	assert.Equal(t, ":7000", c.ListenAddr, "json over defaults")
	assert.Equal(t, "from-env.db", c.DatabaseDSN, "env over json")
	assert.Equal(t, "error", c.LogLevel, "flags over env")
	assert.Equal(t, "memory", c.CacheType, "defaults kept")
}
