package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. GAMETRACKER_LISTEN_ADDR.
const EnvPrefix = "GAMETRACKER"

// envFile is loaded into the process environment when present. Variables
// already set take precedence over the file.
var envFile = ".env"

// parseEnv overlays Config with GAMETRACKER_* variables. Unset variables
// leave the current value alone. A malformed .env file or value panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		panic(err)
	}
}
