package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 100000, cfg.MaxSimulations)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ARRIENDO_ADDR", ":9090")
	t.Setenv("ARRIENDO_MAX_SIMULATIONS", "500")
	t.Setenv("ARRIENDO_CACHE_TTL", "5m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 500, cfg.MaxSimulations)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARRIENDO_REDIS_ADDR=localhost:6379\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ARRIENDO_REDIS_ADDR") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_InvalidLimits(t *testing.T) {
	t.Setenv("ARRIENDO_MAX_SIMULATIONS", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
