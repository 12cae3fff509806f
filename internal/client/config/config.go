package config

import "time"

// Config holds runtime settings for the Vibe CLI.
//
// Fields:
//   - BaseURL: origin of the Vibe server, without a trailing slash.
//   - RequestTimeout: upper bound for one API call, connection included.
//   - PageSize: how many posts one feed page requests (server clamps to 1..100).
//   - DatabasePath: location of the local SQLite database holding the session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	PageSize       int
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 50
	c.DatabasePath = "vibe.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
