package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.HTTP.IdleTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.Archive.SQLitePath)
	assert.Equal(t, 200, cfg.Engine.MaxIterations)
	assert.Equal(t, 25*time.Millisecond, cfg.Engine.StepInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARCHIVE_SQLITE_PATH", "/tmp/archive.db")
	t.Setenv("ENGINE_MAX_ITERATIONS", "500")
	t.Setenv("ENGINE_STEP_INTERVAL", "100ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/archive.db", cfg.Archive.SQLitePath)
	assert.Equal(t, 500, cfg.Engine.MaxIterations)
	assert.Equal(t, 100*time.Millisecond, cfg.Engine.StepInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
