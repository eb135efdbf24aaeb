// Package config provides configuration loading and validation for buildlens.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Server ServerConfig `yaml:"server"`
	AI     AIConfig     `yaml:"ai"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	ReadTimeout     time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// AIConfig configures the optional insight client.
type AIConfig struct {
	// Enabled turns AI insights on for analyze requests.
	Enabled bool `yaml:"enabled"`

	// Endpoint is a chat-completions compatible URL.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Model is the model identifier sent upstream.
	Model string `yaml:"model,omitempty"`

	// APIKey is the bearer token. Prefer the BUILDLENS_AI_API_KEY
	// environment variable over committing it to a config file.
	APIKey string `yaml:"api_key,omitempty"`

	Timeout  time.Duration `yaml:"timeout,omitempty"`
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`
}
