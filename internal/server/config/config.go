// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment, and command-line flags.
package config

import "time"

// Config holds runtime settings for the TaskPad stub server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). The default
//     is for development only.
//   - TokenValidity: session token lifetime; also the cookie Max-Age.
type Config struct {
	Addr          string
	SecretKey     string
	TokenValidity time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.SecretKey = "secretKey"
	c.TokenValidity = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
