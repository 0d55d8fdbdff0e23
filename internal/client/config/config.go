package config

// Config holds runtime settings for the gametracker CLI.
//
// Fields:
//   - ServerBaseURL: root URL of the catalog backend, e.g. http://127.0.0.1:8080.
//   - LogLevel, LogFormat, LogBackend: see logging.Options.
//   - PlaceholderCoverURL: shown when a game has no usable cover image.
type Config struct {
	ServerBaseURL       string
	LogLevel            string
	LogFormat           string
	LogBackend          string
	PlaceholderCoverURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.PlaceholderCoverURL = "https://via.placeholder.com/300x400?text=Sin+Portada"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
