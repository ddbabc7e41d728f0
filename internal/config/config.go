package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid value")

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "ARENA"

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	ArenaAPI  ArenaAPIConfig  `toml:"arena_api" envconfig:"ARENA_API"`
	Refresh   RefreshConfig   `toml:"refresh"`
	Cache     CacheConfig     `toml:"cache"`
	RabbitMQ  RabbitMQConfig  `toml:"rabbitmq"`
	Snapshots SnapshotsConfig `toml:"snapshots"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

type ArenaAPIConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

type RefreshConfig struct {
	Enabled       bool `toml:"enabled"`
	Interval      int  `toml:"interval"`       // секунды между плановыми обновлениями
	BurstCount    int  `toml:"burst_count"`    // количество повторов после оплаты
	BurstInterval int  `toml:"burst_interval"` // секунды между повторами
}

type CacheConfig struct {
	PricingSize int `toml:"pricing_size" envconfig:"PRICING_SIZE"`
	PricingTTL  int `toml:"pricing_ttl" envconfig:"PRICING_TTL"` // секунды
	GridSize    int `toml:"grid_size" envconfig:"GRID_SIZE"`
}

type RabbitMQConfig struct {
	Enabled     bool     `toml:"enabled"`
	URL         string   `toml:"url"`
	Exchange    string   `toml:"exchange"`
	Queue       string   `toml:"queue"`
	RoutingKeys []string `toml:"routing_keys" envconfig:"ROUTING_KEYS"`
}

type SnapshotsConfig struct {
	Enabled       bool `toml:"enabled"`
	RetentionDays int  `toml:"retention_days" envconfig:"RETENTION_DAYS"` // 0 - не удалять
}

// Durations

func (c RefreshConfig) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

func (c RefreshConfig) BurstIntervalDuration() time.Duration {
	return time.Duration(c.BurstInterval) * time.Second
}

func (c CacheConfig) PricingTTLDuration() time.Duration {
	return time.Duration(c.PricingTTL) * time.Second
}

func (c ArenaAPIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "arena-slots",
		},
		ArenaAPI: ArenaAPIConfig{Timeout: 10},
		Refresh: RefreshConfig{
			Enabled:       true,
			Interval:      30,
			BurstCount:    3,
			BurstInterval: 1,
		},
		Cache: CacheConfig{
			PricingSize: 512,
			PricingTTL:  30,
			GridSize:    64,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange:    "payments",
			Queue:       "arena-slots.payment-events",
			RoutingKeys: []string{"payment.paid"},
		},
		Snapshots: SnapshotsConfig{RetentionDays: 7},
	}
}

// Load читает config.toml поверх значений по умолчанию и применяет
// переменные окружения с префиксом ARENA (например ARENA_ARENA_API_URL)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	if c.ArenaAPI.URL == "" {
		return fmt.Errorf("%w: arena_api.url is required", ErrInvalidConfig)
	}
	if c.ArenaAPI.Timeout <= 0 {
		return fmt.Errorf("%w: arena_api.timeout must be positive", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Refresh.Enabled {
		if c.Refresh.Interval <= 0 {
			return fmt.Errorf("%w: refresh.interval must be positive", ErrInvalidConfig)
		}
		if c.Refresh.BurstCount < 0 || c.Refresh.BurstInterval <= 0 {
			return fmt.Errorf("%w: refresh burst settings", ErrInvalidConfig)
		}
	}
	if c.Cache.PricingSize <= 0 || c.Cache.GridSize <= 0 {
		return fmt.Errorf("%w: cache sizes must be positive", ErrInvalidConfig)
	}
	if c.Cache.PricingTTL <= 0 {
		return fmt.Errorf("%w: cache.pricing_ttl must be positive", ErrInvalidConfig)
	}
	if c.Snapshots.RetentionDays < 0 {
		return fmt.Errorf("%w: snapshots.retention_days must not be negative", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("%w: rabbitmq.url is required when enabled", ErrInvalidConfig)
	}
	return nil
}
