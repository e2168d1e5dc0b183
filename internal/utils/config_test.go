package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaultsOnMissingFile(t *testing.T) {
	assert := require.New(t)
	cfg, err := loadConfigFromFile(filepath.Join(t.TempDir(), "missing.conf"))
	assert.NoError(err)
	assert.Equal(">> ", cfg.Prompt)
	assert.False(cfg.Debug)
	assert.Empty(cfg.LogFile)
}

func TestConfigFromFile(t *testing.T) {
	assert := require.New(t)
	path := filepath.Join(t.TempDir(), "listcli.conf")
	assert.NoError(os.WriteFile(path, []byte(`{"log_file": "session.log", "debug": true}`), 0644))

	cfg, err := loadConfigFromFile(path)
	assert.NoError(err)
	assert.Equal("session.log", cfg.LogFile)
	assert.True(cfg.Debug)
	// Missing fields fall back to defaults.
	assert.Equal(">> ", cfg.Prompt)
}

func TestConfigRejectsBadJSON(t *testing.T) {
	assert := require.New(t)
	path := filepath.Join(t.TempDir(), "listcli.conf")
	assert.NoError(os.WriteFile(path, []byte("not json"), 0644))

	_, err := loadConfigFromFile(path)
	assert.Error(err)
}
