package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/studioportal/portal-client/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds; values are copied into the runtime Config (which
// uses time.Duration).
type jsonConfig struct {
	ServerBaseURL     string   `json:"server_base_url"`
	RequestTimeoutSec *int     `json:"request_timeout_sec"`
	StorageDir        string   `json:"storage_dir"`
	RateLimitRPS      *float64 `json:"rate_limit_rps"`
	MetricsAddr       string   `json:"metrics_addr"`
}

// parseJSON overlays Config with values from the JSON file named by the -c
// or -config flags. When no file is given it is a no-op. Read or unmarshal
// errors panic; the caller decides whether to recover.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSec != nil {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeoutSec) * time.Second
	}
	if jc.StorageDir != "" {
		cfg.StorageDir = jc.StorageDir
	}
	if jc.RateLimitRPS != nil {
		cfg.RateLimitRPS = *jc.RateLimitRPS
	}
	if jc.MetricsAddr != "" {
		cfg.MetricsAddr = jc.MetricsAddr
	}
}
