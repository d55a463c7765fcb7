package config

import "time"

// Config holds runtime settings for the contractpad CLI.
//
// Fields:
//   - DatabaseDSN: path (or DSN) of the local SQLite database.
//   - RemoteURL: base URL of the remote REST endpoint.
//   - RemoteAPIKey: API key sent with every remote request.
//   - AnthropicAPIKey: API key for the AI collaborator.
//   - AnthropicModel: model id; empty selects the built-in default.
//   - SyncInterval: period between sync engine drain passes.
//   - AutosaveQuiet: auto-save debounce quiet window.
//   - OnlineCheckInterval: how often the client probes remote reachability.
//   - LogFile: log destination; empty logs to stderr.
type Config struct {
	DatabaseDSN         string
	RemoteURL           string
	RemoteAPIKey        string
	AnthropicAPIKey     string
	AnthropicModel      string
	SyncInterval        time.Duration
	AutosaveQuiet       time.Duration
	OnlineCheckInterval time.Duration
	LogFile             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "contractpad.db"
	c.RemoteURL = "http://127.0.0.1:54321"
	c.SyncInterval = 5 * time.Second
	c.AutosaveQuiet = 2 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
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
