package config

import (
	"flag"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the catalog backend
//	-l string   log level
//
// Only these flags are parsed (see flagx.ParseSubset); a malformed value panics.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the catalog backend")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := flagx.ParseSubset(fs, "-a", "-l"); err != nil {
		panic(err)
	}
}
