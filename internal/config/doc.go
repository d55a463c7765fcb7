// Package config loads runtime configuration for the contractpad CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local SQLite database
//	-r string   base URL of the remote REST endpoint
//	-i int      connectivity check interval (seconds)
//	-l string   log file path (empty logs to stderr)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "database_dsn": "contractpad.db",
//	  "remote_url": "http://127.0.0.1:54321",
//	  "remote_api_key": "...",
//	  "anthropic_api_key": "...",
//	  "anthropic_model": "",
//	  "sync_interval": "5s",
//	  "autosave_quiet": "2s",
//	  "online_check_interval": "3s",
//	  "log_file": ""
//	}
//
// Primary API
//
//   - type Config                     — holds all runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
