package config

import (
	"path/filepath"
	"time"
)

const envPrefix = "POSTFEED_"

// Config holds runtime settings for the PostFeed CLI.
type Config struct {
	DataDir        string        `env:"DATA_DIR"`
	DatabaseFile   string        `env:"DATABASE_FILE"`
	PostsEndpoint  string        `env:"POSTS_ENDPOINT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".postfeed"
	c.DatabaseFile = "postfeed.db"
	c.PostsEndpoint = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// DatabasePath is the SQLite file inside DataDir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment, then command-line flags. Later sources win. Malformed input
// in any source panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
