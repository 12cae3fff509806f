// Package config loads runtime configuration for the Vibe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Vibe server
//	-t int      request timeout (seconds)
//	-p int      feed page size
//	-d string   path to the local client database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either
// a string like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "page_size": 50,
//	  "database_path": "vibe.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the client
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
