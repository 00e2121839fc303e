package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("AMAP_KEY", "env_key")
	t.Setenv("AMAP_SIGN", "true")
	t.Setenv("AMAP_PRIVATE_KEY", "env_private")
	t.Setenv("AMAP_HEADERS", "X-Client=gateway, X-Trace = on,broken")
	t.Setenv("JOURNAL_ENABLED", "true")
	t.Setenv("WORKER_IDLE_SLEEP_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env_key", cfg.Amap.Key)
	assert.True(t, cfg.Amap.Sign)
	assert.Equal(t, "env_private", cfg.Amap.PrivateKey)
	assert.Equal(t, map[string]string{"X-Client": "gateway", "X-Trace": "on"}, cfg.Amap.Headers)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.IdleSleep)

	// значения по умолчанию
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://restapi.amap.com", cfg.Amap.BaseURL)
	assert.Equal(t, "https://et-api.amap.com", cfg.Amap.EventBaseURL)
	assert.Equal(t, 10, cfg.Amap.RequestTimeout)
	assert.Equal(t, "amap-geocode-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 20, cfg.Worker.BatchSize)
}

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, parseHeaders(""))
	assert.Equal(t, map[string]string{"A": "1", "B": ""}, parseHeaders("A=1,B=,=x"))
}

func TestConfig_Addresses(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Redis:  RedisConfig{Host: "redis", Port: 6379},
	}
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "redis:6379", cfg.GetRedisAddr())

	cfg.Database = DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "amap", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=amap sslmode=disable", cfg.GetDatabaseDSN())
}
