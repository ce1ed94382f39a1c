package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the storefront reads.
const EnvPrefix = "STOREFRONT_"

// parseEnv overlays cfg with STOREFRONT_* variables. Unset variables leave
// the current value alone.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
