package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "contractpad.db", c.DatabaseDSN)
	assert.Equal(t, "http://127.0.0.1:54321", c.RemoteURL)
	assert.Equal(t, 5*time.Second, c.SyncInterval)
	assert.Equal(t, 2*time.Second, c.AutosaveQuiet)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Empty(t, c.LogFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "contractpad.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
