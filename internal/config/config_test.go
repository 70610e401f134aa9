package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:50055", cfg.Server.Addr())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 2*time.Second, cfg.Sync.PollInterval)
	assert.Equal(t, time.Duration(0), cfg.Sync.FetchTimeout)
	assert.Equal(t, 10*time.Second, cfg.GRPC.ShutdownTimeout)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
environment: production
storage:
  driver: bolt
  bolt_path: /tmp/exchange.bolt
sync:
  poll_interval: 5s
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/exchange.bolt", cfg.Storage.BoltPath)
	assert.Equal(t, 5*time.Second, cfg.Sync.PollInterval)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SYNC_POLL_INTERVAL", "250ms")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_HMAC_SECRET", "s3cret")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.PollInterval)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "s3cret", cfg.Auth.HMACSecret)
}

func TestLoadRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "storage.driver")
}

func TestLoadRequiresRedisURL(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "redis")
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "cache.redis_url")
}
