package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("loads all keys", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"data_dir":        "/tmp/pf",
			"database_file":   "x.db",
			"posts_endpoint":  "http://localhost:8080",
			"request_timeout": "2s",
			"log_level":       "debug",
		})
		os.Args = []string{"postfeed", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, Config{
			DataDir:        "/tmp/pf",
			DatabaseFile:   "x.db",
			PostsEndpoint:  "http://localhost:8080",
			RequestTimeout: 2 * time.Second,
			LogLevel:       "debug",
		}, *cfg)
	})

	t.Run("nanosecond timeout and missing keys", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"request_timeout": 1500000000,
		})
		os.Args = []string{"postfeed", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, ".postfeed", cfg.DataDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"postfeed"}

		cfg := &Config{DataDir: "keep", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.DataDir)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"postfeed", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"postfeed", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
