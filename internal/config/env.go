package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvFetcher overrides the fetcher command location.
const EnvFetcher = "GUILDTRACK_FETCHER"

type envOverrides struct {
	Fetcher string `env:"GUILDTRACK_FETCHER"`
}

func applyEnv(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.Fetcher != "" {
		cfg.Acquisition.Command = overrides.Fetcher
	}
	return nil
}
