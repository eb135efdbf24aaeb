package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. A missing path
// returns the defaults (with environment overrides applied).
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return errors.New("server timeouts must not be negative")
	}

	if cfg.AI.Enabled {
		if err := validateAI(&cfg.AI); err != nil {
			return fmt.Errorf("ai: %w", err)
		}
	}

	return nil
}

func validateAI(ai *AIConfig) error {
	if ai.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(ai.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must be http or https, got %q", u.Scheme)
	}
	if ai.Model == "" {
		return errors.New("model is required")
	}
	if ai.APIKey == "" {
		return fmt.Errorf("api_key is required (set %s)", EnvAIAPIKey)
	}
	return nil
}
