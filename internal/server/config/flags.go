package config

import (
	"flag"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-d string   database DSN
//	-b string   database driver (sqlite, postgres)
//	-k string   cache type (none, memory, redis)
//	-l string   log level
//
// Only these flags are parsed (see flagx.ParseSubset); a malformed value panics.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.DBDriver, "b", cfg.DBDriver, "database driver (sqlite, postgres)")
	fs.StringVar(&cfg.CacheType, "k", cfg.CacheType, "cache type (none, memory, redis)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := flagx.ParseSubset(fs, "-a", "-d", "-b", "-k", "-l"); err != nil {
		panic(err)
	}
}
