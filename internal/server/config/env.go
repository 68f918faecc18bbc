package config

import "os"

// parseEnv overlays cfg with environment values.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TASKPAD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TASKPAD_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
}
