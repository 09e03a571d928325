// SPDX-License-Identifier: MIT

// Package config loads and validates gateway configuration from the
// environment and an optional YAML file. Environment values win over
// file values; defaults fill the rest.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the complete gateway configuration.
type Config struct {
	// Listen is the address of the API listener.
	Listen string `yaml:"listen"`

	// MetricsListen is the address of the Prometheus metrics listener.
	MetricsListen string `yaml:"metrics_listen"`

	// AgentURL is the base URL of the upstream EIDO Agent service.
	AgentURL string `yaml:"agent_url"`

	// AgentTimeout bounds every outbound request to the Agent.
	AgentTimeout time.Duration `yaml:"agent_timeout"`

	// LogLevel sets the zerolog level ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`

	// MaxUploadBytes caps the size of an uploaded EIDO file.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	RateLimitEnabled bool `yaml:"rate_limit_enabled"`
	RateLimitRPS     int  `yaml:"rate_limit_rps"`
	RateLimitBurst   int  `yaml:"rate_limit_burst"`
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Listen:           ":8080",
		MetricsListen:    ":9090",
		AgentURL:         "http://localhost:8000",
		AgentTimeout:     30 * time.Second,
		LogLevel:         "info",
		MaxUploadBytes:   10 << 20,
		RateLimitEnabled: true,
		RateLimitRPS:     100,
		RateLimitBurst:   200,
	}
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path (if path is non-empty), overlaid by environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	mergeEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the gateway cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	u, err := url.Parse(c.AgentURL)
	if err != nil {
		return fmt.Errorf("agent URL %q: %w", c.AgentURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("agent URL %q: scheme must be http or https", c.AgentURL)
	}
	if u.Host == "" {
		return fmt.Errorf("agent URL %q: host must not be empty", c.AgentURL)
	}
	if c.AgentTimeout <= 0 {
		return fmt.Errorf("agent timeout must be positive, got %s", c.AgentTimeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("rate limit rps must be positive, got %d", c.RateLimitRPS)
		}
		if c.RateLimitBurst < c.RateLimitRPS {
			return fmt.Errorf("rate limit burst %d must be >= rps %d", c.RateLimitBurst, c.RateLimitRPS)
		}
	}
	return nil
}

// mergeEnv overlays environment variables onto cfg.
func mergeEnv(cfg *Config) {
	cfg.Listen = ParseString("IDXGW_LISTEN", cfg.Listen)
	cfg.MetricsListen = ParseString("IDXGW_METRICS_LISTEN", cfg.MetricsListen)
	cfg.AgentURL = ParseString("IDXGW_AGENT_URL", cfg.AgentURL)
	cfg.AgentTimeout = ParseDuration("IDXGW_AGENT_TIMEOUT", cfg.AgentTimeout)
	cfg.LogLevel = ParseString("IDXGW_LOG_LEVEL", cfg.LogLevel)
	cfg.MaxUploadBytes = int64(ParseInt("IDXGW_MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.RateLimitEnabled = ParseBool("IDXGW_RATE_LIMIT_ENABLED", cfg.RateLimitEnabled)
	cfg.RateLimitRPS = ParseInt("IDXGW_RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = ParseInt("IDXGW_RATE_LIMIT_BURST", cfg.RateLimitBurst)
}
