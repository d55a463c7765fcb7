package config

import (
	"encoding/json"
	"os"
	"time"

	"contractpad/internal/flagx"
	"contractpad/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	RemoteURL           string         `json:"remote_url"`
	RemoteAPIKey        string         `json:"remote_api_key"`
	AnthropicAPIKey     string         `json:"anthropic_api_key"`
	AnthropicModel      string         `json:"anthropic_model"`
	SyncInterval        timex.Duration `json:"sync_interval"`
	AutosaveQuiet       timex.Duration `json:"autosave_quiet"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogFile             string         `json:"log_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values in the JSON
//     leave the corresponding Config field untouched.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RemoteURL != "" {
		cfg.RemoteURL = jc.RemoteURL
	}
	if jc.RemoteAPIKey != "" {
		cfg.RemoteAPIKey = jc.RemoteAPIKey
	}
	if jc.AnthropicAPIKey != "" {
		cfg.AnthropicAPIKey = jc.AnthropicAPIKey
	}
	if jc.AnthropicModel != "" {
		cfg.AnthropicModel = jc.AnthropicModel
	}
	if jc.SyncInterval.Duration != 0 {
		cfg.SyncInterval = time.Duration(jc.SyncInterval.Duration)
	}
	if jc.AutosaveQuiet.Duration != 0 {
		cfg.AutosaveQuiet = time.Duration(jc.AutosaveQuiet.Duration)
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
}
