package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gametracker/internal/flagx"
	"github.com/mitchellh/go-homedir"
)

// defaultConfigPath is read when no -c/-config flag is given.
var defaultConfigPath = "~/.gametracker.json"

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerBaseURL       string `json:"server_base_url"`
	LogLevel            string `json:"log_level"`
	LogFormat           string `json:"log_format"`
	LogBackend          string `json:"log_backend"`
	PlaceholderCoverURL string `json:"placeholder_cover_url"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The path comes from -c/-config; when absent the default path is tried and
// silently skipped if the file does not exist. Read and unmarshal errors of
// a file that exists panic, like flag errors.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	optional := false
	if path == "" {
		optional = true
		expanded, err := homedir.Expand(defaultConfigPath)
		if err != nil {
			return
		}
		path = expanded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerBaseURL, jc.ServerBaseURL)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.LogBackend, jc.LogBackend)
	overlay(&cfg.PlaceholderCoverURL, jc.PlaceholderCoverURL)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
