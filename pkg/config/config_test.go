package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "regimeeye", cfg.Database.Name)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.BacktestTTL)
	assert.False(t, cfg.DatabaseConfigured())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9001
database:
  host: ch.internal
  name: audit
cache:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "audit", cfg.Database.Name)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "clickhouse://default:@ch.internal:9000/audit")
	t.Setenv("DATABASE_NAME", "audit")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "clickhouse://default:@ch.internal:9000/audit", cfg.Database.URL)
	assert.Equal(t, "audit", cfg.Database.Name)
	assert.Equal(t, "redis.internal:6379", cfg.Cache.RedisAddr)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestLoadWithEnvInvalidPortKeepsDefault(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8000
	cfg.Database.Name = ""
	assert.Error(t, cfg.Validate())
}
