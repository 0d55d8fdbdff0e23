// Package config loads runtime configuration for the gametracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config. Without the flag,
//     ~/.gametracker.json is read when it exists. A leading ~ is expanded.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog backend
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "log_backend": "logrus",
//	  "placeholder_cover_url": "https://example.com/cover.png"
//	}
//
// Empty or missing JSON members keep the earlier value.
package config
