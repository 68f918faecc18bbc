package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/okorotkov/taskpad/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The token
// validity is expressed in integer hours.
type JsonConfig struct {
	Addr               string `json:"addr"`
	SecretKey          string `json:"secret_key"`
	TokenValidityHours int    `json:"token_validity_hours"`
}

// parseJson overlays cfg with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, nothing happens; read or
// unmarshal errors panic. Zero-valued JSON fields do not overwrite earlier
// sources.
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

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidityHours > 0 {
		cfg.TokenValidity = time.Duration(jc.TokenValidityHours) * time.Hour
	}
}
