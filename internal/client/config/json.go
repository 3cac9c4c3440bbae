package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/postfeed/internal/flagx"
	"github.com/dmitrijs2005/postfeed/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Keys that are absent
// keep their previous values.
type JsonConfig struct {
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	PostsEndpoint  string         `json:"posts_endpoint"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics when the file cannot be read or decoded.
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.PostsEndpoint != "" {
		cfg.PostsEndpoint = jc.PostsEndpoint
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
