package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaiMadhav/VitalOps/internal/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, fixtures.DefaultSubjectID, cfg.Subject.ID)
	assert.Equal(t, DataSourceFixtures, cfg.DataSource)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.MQTT.Enabled)
	assert.Equal(t, "vitalops:events", cfg.Events.Stream)
	assert.Equal(t, "vitalops/observations", cfg.MQTT.Topic)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MQTT_ENABLED", "1")
	t.Setenv("MQTT_QOS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, DataSourcePostgres, cfg.DataSource)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.MQTT.Enabled)
	assert.Equal(t, byte(2), cfg.MQTT.QoS)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitalops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7070"
subject:
  id: subject-42
redis:
  enabled: true
  addr: cache:6379
cache:
  ttl: 1m
mqtt:
  topic: lab/observations
log:
  format: console
`), 0o600))
	t.Setenv(EnvConfigFile, path)
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "subject-42", cfg.Subject.ID)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "lab/observations", cfg.MQTT.Topic)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)
	// 环境变量优先于文件
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidDataSource(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv("DATA_SOURCE", "sqlite")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid data source")
}
