package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из config.toml
const (
	EnvCommerceURL            = "COMMERCE_URL"
	EnvCommercePublishableKey = "COMMERCE_PUBLISHABLE_KEY"
	EnvCommerceRegionID       = "COMMERCE_REGION_ID"
	EnvLogLevel               = "LOG_LEVEL"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Commerce  CommerceConfig  `toml:"commerce"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CommerceConfig настройки commerce-бэкенда (Store API)
type CommerceConfig struct {
	URL            string `toml:"url"`
	PublishableKey string `toml:"publishable_key"`
	RegionID       string `toml:"region_id"`
	Timeout        int    `toml:"timeout"`
}

// RateLimitConfig ограничение запросов на один IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	CleanupPeriod     int     `toml:"cleanup_period"`
	ClientTTL         int     `toml:"client_ttl"`
	// Доверять X-Forwarded-For / X-Real-IP (только за своим reverse proxy)
	TrustProxyHeaders bool    `toml:"trust_proxy_headers"`
}

// CORSConfig разрешённые источники витрины
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла
// Секреты можно переопределить переменными окружения или файлом .env рядом с сервисом.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен: в контейнере значения приходят из окружения
	_ = godotenv.Load()

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "container-storefront",
		},
		Commerce: CommerceConfig{
			Timeout: 10,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 50,
			Burst:             100,
			CleanupPeriod:     60,
			ClientTTL:         180,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCommerceURL); v != "" {
		c.Commerce.URL = v
	}
	if v := os.Getenv(EnvCommercePublishableKey); v != "" {
		c.Commerce.PublishableKey = v
	}
	if v := os.Getenv(EnvCommerceRegionID); v != "" {
		c.Commerce.RegionID = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logs.Level = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if strings.TrimSpace(c.Commerce.URL) == "" {
		return fmt.Errorf("%w: commerce.url is required", ErrInvalidConfig)
	}
	if c.Commerce.Timeout <= 0 {
		return fmt.Errorf("%w: commerce.timeout must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.CleanupPeriod <= 0 || c.RateLimit.ClientTTL <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive cleanup_period and client_ttl", ErrInvalidConfig)
	}
	return nil
}
