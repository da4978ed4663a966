// Package config assembles runtime settings for the portal CLI from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the portal client.
//
// Fields:
//   - ServerBaseURL: root URL of the portal API.
//   - RequestTimeout: per-request transport timeout.
//   - StorageDir: namespace directory for persisted client state.
//   - RateLimitRPS: outbound request pacing; 0 disables it.
//   - MetricsAddr: listen address for /metrics; empty disables the endpoint.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StorageDir     string
	RateLimitRPS   float64
	MetricsAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.StorageDir = defaultStorageDir()
	c.RateLimitRPS = 10
	c.MetricsAddr = ""
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studio-portal"
	}
	return filepath.Join(home, ".studio-portal")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
