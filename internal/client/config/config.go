package config

import (
	"os"
	"time"
)

// EnvAPIBaseURL overrides the default API endpoint when set.
const EnvAPIBaseURL = "TECHKATTA_API_URL"

// Config holds runtime settings for the TechKatta CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: location of the local sqlite database holding session
//     credentials.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
}

// LoadDefaults populates c with sensible defaults. The API endpoint falls
// back to the local development address unless EnvAPIBaseURL is set.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "techkatta.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
