// Package config handles configuration for the catalog backend: defaults,
// an optional JSON file, environment variables (with .env support) and
// command-line flags, in increasing order of precedence.
package config

import (
	"time"

	"github.com/dmitrijs2005/gametracker/internal/dbx"
)

// Config holds runtime settings for the gametracker backend.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - DBDriver: "sqlite" or "postgres".
//   - DatabaseDSN: sqlite file path (or ":memory:") or a postgres URL.
//   - CacheType: "none", "memory" or "redis"; CacheTTL bounds list entries.
//   - RedisAddr / RedisPassword / RedisDB: used when CacheType is redis.
//   - AllowedOrigins: CORS origins, "*" when empty.
//   - ShutdownTimeout: grace period for in-flight requests.
//   - LogLevel, LogFormat, LogBackend: see logging.Options.
type Config struct {
	ListenAddr      string        `envconfig:"LISTEN_ADDR"`
	DBDriver        string        `envconfig:"DB_DRIVER"`
	DatabaseDSN     string        `envconfig:"DATABASE_DSN"`
	CacheType       string        `envconfig:"CACHE_TYPE"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"REDIS_DB"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `envconfig:"LOG_LEVEL"`
	LogFormat       string        `envconfig:"LOG_FORMAT"`
	LogBackend      string        `envconfig:"LOG_BACKEND"`
}

// LoadDefaults populates Config with development defaults: a local sqlite
// file and an in-process cache.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DBDriver = string(dbx.SQLite)
	c.DatabaseDSN = "gametracker.db"
	c.CacheType = "memory"
	c.CacheTTL = 5 * time.Minute
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.AllowedOrigins = []string{"*"}
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.LogBackend = "slog"
}

// Dialect returns the SQL dialect named by DBDriver, defaulting to sqlite.
func (c *Config) Dialect() dbx.Dialect {
	if d, ok := dbx.ParseDialect(c.DBDriver); ok {
		return d
	}
	return dbx.SQLite
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
