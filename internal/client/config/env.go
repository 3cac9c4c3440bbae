package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with POSTFEED_* environment variables. Unset
// variables leave the current values alone.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
}
