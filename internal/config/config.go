package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Amap     AmapConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// AmapConfig - настройки клиента AMap WebService
type AmapConfig struct {
	Key            string            `json:"key" validate:"required"`
	Sign           bool              `json:"sign"`
	PrivateKey     string            `json:"private_key" validate:"required_if=Sign true"`
	BaseURL        string            `json:"base_url"`
	EventBaseURL   string            `json:"event_base_url"`
	RequestTimeout int               `json:"request_timeout"` // seconds
	Proxy          string            `json:"proxy"`
	Headers        map[string]string `json:"headers"`
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string // json или console
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
	IdleSleep     time.Duration // пауза при пустой очереди
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env не обязателен: в контейнере всё приходит через окружение
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Amap: AmapConfig{
			Key:            viper.GetString("AMAP_KEY"),
			Sign:           viper.GetBool("AMAP_SIGN"),
			PrivateKey:     viper.GetString("AMAP_PRIVATE_KEY"),
			BaseURL:        viper.GetString("AMAP_BASE_URL"),
			EventBaseURL:   viper.GetString("AMAP_EVENT_BASE_URL"),
			RequestTimeout: viper.GetInt("AMAP_REQUEST_TIMEOUT"),
			Proxy:          viper.GetString("AMAP_PROXY"),
			Headers:        parseHeaders(viper.GetString("AMAP_HEADERS")),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("JOURNAL_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
			IdleSleep:     time.Duration(viper.GetInt("WORKER_IDLE_SLEEP_MS")) * time.Millisecond,
		},
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных параметров
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Amap.BaseURL == "" {
		c.Amap.BaseURL = "https://restapi.amap.com"
	}
	if c.Amap.EventBaseURL == "" {
		c.Amap.EventBaseURL = "https://et-api.amap.com"
	}
	if c.Amap.RequestTimeout == 0 {
		c.Amap.RequestTimeout = 10
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "amap-geocode-workers"
	}
	if c.Worker.IdleSleep == 0 {
		c.Worker.IdleSleep = 100 * time.Millisecond
	}
	if c.Worker.BatchSize == 0 {
		c.Worker.BatchSize = 20
	}
}

// parseHeaders разбирает строку вида "k1=v1,k2=v2"
func parseHeaders(s string) map[string]string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make(map[string]string, len(parts))
	for _, p := range parts {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		result[name] = strings.TrimSpace(value)
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения к PostgreSQL в формате key=value
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
