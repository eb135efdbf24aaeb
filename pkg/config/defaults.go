package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultAIEndpoint      = "https://api.openai.com/v1/chat/completions"
	DefaultAIModel         = "gpt-4o-mini"
	DefaultAITimeout       = 30 * time.Second
	DefaultAICacheTTL      = 15 * time.Minute
)

// Environment variable names.
const (
	EnvAddr       = "BUILDLENS_ADDR"
	EnvAIAPIKey   = "BUILDLENS_AI_API_KEY"
	EnvAIEndpoint = "BUILDLENS_AI_ENDPOINT"
	EnvAIModel    = "BUILDLENS_AI_MODEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		AI: AIConfig{
			Endpoint: DefaultAIEndpoint,
			Model:    DefaultAIModel,
			Timeout:  DefaultAITimeout,
			CacheTTL: DefaultAICacheTTL,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
	if key := os.Getenv(EnvAIAPIKey); key != "" {
		c.AI.APIKey = key
	}
	if endpoint := os.Getenv(EnvAIEndpoint); endpoint != "" {
		c.AI.Endpoint = endpoint
	}
	if model := os.Getenv(EnvAIModel); model != "" {
		c.AI.Model = model
	}
}
