package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_LoadFromEnvAndDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "vitalops")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	c := DatabaseConfig{Host: "localhost", Port: 5432, User: "postgres", SSLMode: "disable", MaxConns: 4}
	c.LoadFromEnv("DB")

	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, 4, c.MaxConns, "invalid ints keep the previous value")
	assert.Equal(t, "host=db.internal port=6543 user=postgres password= dbname=vitalops sslmode=disable", c.GetDSN())
}

func TestMQTTConfig_LoadFromEnv_QoS(t *testing.T) {
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")
	t.Setenv("MQTT_QOS", "1")

	c := MQTTConfig{}
	c.LoadFromEnv("MQTT")
	assert.Equal(t, "tcp://broker:1883", c.Broker)
	assert.Equal(t, byte(1), c.QoS)

	t.Setenv("MQTT_QOS", "7")
	c.LoadFromEnv("MQTT")
	assert.Equal(t, byte(1), c.QoS)
}

func TestRedisConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")

	c := RedisConfig{Addr: "localhost:6379"}
	c.LoadFromEnv("REDIS")
	assert.Equal(t, "cache:6380", c.Addr)
	assert.Equal(t, 3, c.DB)
}
