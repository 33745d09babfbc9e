package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	commoncfg "github.com/JaiMadhav/VitalOps/common/config"
	"github.com/JaiMadhav/VitalOps/internal/fixtures"

	"gopkg.in/yaml.v3"
)

// 数据源
const (
	DataSourceFixtures = "fixtures"
	DataSourcePostgres = "postgres"
)

// EnvConfigFile 可选 YAML 配置文件路径
const EnvConfigFile = "VITALOPS_CONFIG"

// Config vitalops-server 配置
// 优先级：环境变量 > YAML 文件 > 默认值
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Subject struct {
		ID string `yaml:"id"`
	} `yaml:"subject"`
	DataSource string                   `yaml:"data_source"`
	Database   commoncfg.DatabaseConfig `yaml:"database"`
	Redis      struct {
		Enabled               bool `yaml:"enabled"`
		commoncfg.RedisConfig `yaml:",inline"`
	} `yaml:"redis"`
	Cache struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Events struct {
		Stream string `yaml:"stream"`
		MaxLen int64  `yaml:"max_len"`
	} `yaml:"events"`
	MQTT struct {
		Enabled              bool `yaml:"enabled"`
		commoncfg.MQTTConfig `yaml:",inline"`
	} `yaml:"mqtt"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default 默认配置（本地开发：fixtures 数据源，Redis/MQTT 关闭）
func Default() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = ":8080"
	cfg.Subject.ID = fixtures.DefaultSubjectID
	cfg.DataSource = DataSourceFixtures

	cfg.Database = commoncfg.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "vitalops",
		SSLMode:  "disable",
		MaxConns: 10,
		MaxIdle:  2,
	}

	cfg.Redis.Addr = "localhost:6379"
	cfg.Cache.TTL = 5 * time.Minute
	cfg.Events.Stream = "vitalops:events"
	cfg.Events.MaxLen = 1000

	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.MQTT.ClientID = "vitalops-server"
	cfg.MQTT.Topic = "vitalops/observations"
	cfg.MQTT.QoS = 1

	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() {
	c.HTTP.Addr = getEnv("HTTP_ADDR", c.HTTP.Addr)
	c.Subject.ID = getEnv("SUBJECT_ID", c.Subject.ID)
	c.DataSource = strings.ToLower(getEnv("DATA_SOURCE", c.DataSource))

	c.Database.LoadFromEnv("DB")

	c.Redis.Enabled = parseBool(os.Getenv("REDIS_ENABLED"), c.Redis.Enabled)
	c.Redis.LoadFromEnv("REDIS")
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
	c.Events.Stream = getEnv("EVENTS_STREAM", c.Events.Stream)
	c.Events.MaxLen = int64(parseInt(os.Getenv("EVENTS_MAX_LEN"), int(c.Events.MaxLen)))

	c.MQTT.Enabled = parseBool(os.Getenv("MQTT_ENABLED"), c.MQTT.Enabled)
	c.MQTT.LoadFromEnv("MQTT")

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceFixtures, DataSourcePostgres:
	default:
		return fmt.Errorf("invalid data source %q (want %s or %s)", c.DataSource, DataSourceFixtures, DataSourcePostgres)
	}
	if c.Subject.ID == "" {
		return fmt.Errorf("subject id is required")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
