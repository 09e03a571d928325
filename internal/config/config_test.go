// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "http://localhost:8000", cfg.AgentURL)
	assert.Equal(t, 30*time.Second, cfg.AgentTimeout)
	assert.True(t, cfg.RateLimitEnabled)
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	doc := "agent_url: http://agent.internal:9000\nlisten: \":8181\"\nrate_limit_enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://agent.internal:9000", cfg.AgentURL)
	assert.Equal(t, ":8181", cfg.Listen)
	assert.False(t, cfg.RateLimitEnabled)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, ":9090", cfg.MetricsListen)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agent_url: http://from-file:9000\n"), 0o600))

	t.Setenv("IDXGW_AGENT_URL", "http://from-env:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000", cfg.AgentURL)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t{not yaml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(_ *Config) {}},
		{name: "empty listen", mutate: func(c *Config) { c.Listen = "" }, wantErr: true},
		{name: "ftp scheme", mutate: func(c *Config) { c.AgentURL = "ftp://agent:21" }, wantErr: true},
		{name: "missing host", mutate: func(c *Config) { c.AgentURL = "http://" }, wantErr: true},
		{name: "relative url", mutate: func(c *Config) { c.AgentURL = "agent:8000" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.AgentTimeout = 0 }, wantErr: true},
		{name: "zero upload cap", mutate: func(c *Config) { c.MaxUploadBytes = 0 }, wantErr: true},
		{name: "burst below rps", mutate: func(c *Config) { c.RateLimitBurst = 1 }, wantErr: true},
		{name: "rate limit off skips limits", mutate: func(c *Config) {
			c.RateLimitEnabled = false
			c.RateLimitRPS = 0
		}},
		{name: "https agent", mutate: func(c *Config) { c.AgentURL = "https://agent.example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
