package config

import (
	"flag"
	"os"
	"time"

	"github.com/studioportal/portal-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the portal API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   storage directory for persisted client state
//	-r float    outbound request rate limit, requests per second
//	-m string   metrics listen address (empty disables /metrics)
//
// os.Args is filtered to the flags handled here, via flagx.FilterArgs, so
// this parse does not trip over flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-r", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the portal API")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StorageDir, "d", cfg.StorageDir, "storage directory for persisted client state")
	fs.Float64Var(&cfg.RateLimitRPS, "r", cfg.RateLimitRPS, "outbound request rate limit (requests per second)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
