package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// strings such as "5m".
type JsonConfig struct {
	ListenAddr      string   `json:"listen_addr"`
	DBDriver        string   `json:"db_driver"`
	DatabaseDSN     string   `json:"database_dsn"`
	CacheType       string   `json:"cache_type"`
	CacheTTL        string   `json:"cache_ttl"`
	RedisAddr       string   `json:"redis_addr"`
	RedisPassword   string   `json:"redis_password"`
	RedisDB         *int     `json:"redis_db"`
	AllowedOrigins  []string `json:"allowed_origins"`
	ShutdownTimeout string   `json:"shutdown_timeout"`
	LogLevel        string   `json:"log_level"`
	LogFormat       string   `json:"log_format"`
	LogBackend      string   `json:"log_backend"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Nothing is loaded when the flag is absent. Unreadable files, invalid JSON
// and malformed durations panic.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ListenAddr, jc.ListenAddr)
	overlay(&cfg.DBDriver, jc.DBDriver)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.CacheType, jc.CacheType)
	overlayDuration(&cfg.CacheTTL, jc.CacheTTL)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if len(jc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
	overlayDuration(&cfg.ShutdownTimeout, jc.ShutdownTimeout)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.LogBackend, jc.LogBackend)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
