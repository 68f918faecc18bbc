// Package config loads runtime configuration for the TaskPad client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      session refresh interval (seconds)
//
// # JSON schema
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "session_refresh_interval_sec": 30,
//	  "request_timeout_sec": 10,
//	  "max_retries": 3
//	}
//
// Environment
//
//	TASKPAD_API_URL — overrides base_url
package config
