package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	VillaAPI VillaAPIConfig `toml:"villa_api"`
	Sessions SessionsConfig `toml:"sessions"`
	Redis    RedisConfig    `toml:"redis"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// VillaAPIConfig настройки клиента внешнего API виллы
type VillaAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды

	// Circuit breaker: после BreakerMaxFailures подряд идущих ошибок
	// запросы не отправляются BreakerOpenTimeout секунд
	BreakerMaxFailures int `toml:"breaker_max_failures"`
	BreakerOpenTimeout int `toml:"breaker_open_timeout"`
}

// SessionsConfig настройки хранения сессий посетителей
type SessionsConfig struct {
	Backend      string `toml:"backend"` // memory | redis
	TTLMinutes   int    `toml:"ttl_minutes"`
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
}

// RedisConfig подключение к Redis (используется при sessions.backend = "redis")
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load читает конфигурацию из TOML-файла, затем применяет переменные окружения.
// Файл .env рядом с бинарём необязателен.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    20,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "villa-booking-front",
		},
		VillaAPI: VillaAPIConfig{
			URL:                "http://localhost:8000/api",
			Timeout:            10,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: 30,
		},
		Sessions: SessionsConfig{
			Backend:    SessionBackendMemory,
			TTLMinutes: 120,
			CookieName: "villa_session",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("VILLA_API_URL"); v != "" {
		c.VillaAPI.URL = v
	}
	if v := os.Getenv("SESSION_BACKEND"); v != "" {
		c.Sessions.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	return nil
}

// Validate проверяет, что конфигурация пригодна для запуска
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.VillaAPI.URL == "" {
		return errors.New("config: villa_api.url is required")
	}
	if c.VillaAPI.Timeout <= 0 {
		return fmt.Errorf("config: villa_api.timeout must be positive, got %d", c.VillaAPI.Timeout)
	}
	switch c.Sessions.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("config: redis.addr is required for redis session backend")
		}
	default:
		return fmt.Errorf("config: unknown sessions.backend %q", c.Sessions.Backend)
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("config: sessions.ttl_minutes must be positive, got %d", c.Sessions.TTLMinutes)
	}
	if c.Sessions.CookieName == "" {
		return errors.New("config: sessions.cookie_name is required")
	}
	return nil
}
