package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/checkme/internal/config"
	"github.com/rmaia/checkme/internal/model"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDatabasePath(), cfg.DatabasePath)
	assert.Equal(t, model.DefaultColor, cfg.DefaultColor)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_path: /tmp/test.db\ndefault_color: \"#22C55E\"\nlog_level: debug\n",
	), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "#22C55E", cfg.DefaultColor)
	assert.Equal(t, "debug", cfg.LogLevel)
}
