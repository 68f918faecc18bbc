package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/okorotkov/taskpad/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Interval
// fields are integer seconds; after parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL                   string `json:"base_url"`
	SessionRefreshIntervalSec int    `json:"session_refresh_interval_sec"`
	RequestTimeoutSec         int    `json:"request_timeout_sec"`
	MaxRetries                int    `json:"max_retries"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. If no file is given, nothing happens; read
// or unmarshal errors panic (callers may recover if desired). Zero-valued
// JSON fields do not overwrite earlier sources.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionRefreshIntervalSec > 0 {
		cfg.SessionRefreshInterval = time.Duration(jc.SessionRefreshIntervalSec) * time.Second
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.MaxRetries > 0 {
		cfg.MaxRetries = jc.MaxRetries
	}
}
