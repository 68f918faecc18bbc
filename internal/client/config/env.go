package config

import "os"

// parseEnv overlays Config with environment values. Only the base URL is
// environment-configurable, mirroring how the web client received it.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TASKPAD_API_URL"); v != "" {
		cfg.BaseURL = v
	}
}
