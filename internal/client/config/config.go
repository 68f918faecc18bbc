package config

import "time"

// Config holds runtime settings for the TaskPad client.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - SessionRefreshInterval: how often the background watcher re-probes
//     the session to pick up server-side expiry.
//   - RequestTimeout / MaxRetries: declared request tuning. These are
//     loaded but not applied by the HTTP client; see DESIGN.md.
type Config struct {
	BaseURL                string
	SessionRefreshInterval time.Duration
	RequestTimeout         time.Duration
	MaxRetries             int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.SessionRefreshInterval = 30 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.MaxRetries = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
