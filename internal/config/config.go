package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvSchedulerURL = "SLOTBOOKING_SCHEDULER_URL"
	EnvDBPassword   = "SLOTBOOKING_DB_PASSWORD"
	EnvHTTPPort     = "SLOTBOOKING_HTTP_PORT"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Sessions  SessionsConfig  `toml:"sessions"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
	Database  DatabaseConfig  `toml:"database"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulerConfig внешний API расписаний; URL указывает на префикс /api/bookings
type SchedulerConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SessionsConfig время жизни сессий в памяти
type SessionsConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

// RateLimitConfig ограничение поиска провайдера по IP клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxAge         int      `toml:"max_age"`
}

// DatabaseConfig журнал квитанций; при enabled = false БД не используется
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c SchedulerConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c SessionsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func (c SessionsConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Default значения по умолчанию; файл перекрывает только заданные ключи
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "slotbooking",
		},
		Scheduler: SchedulerConfig{
			URL:     "http://localhost:8000/api/bookings",
			Timeout: 10,
		},
		Sessions: SessionsConfig{
			TTLMinutes:           30,
			SweepIntervalSeconds: 60,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// Load читает TOML файл, затем .env и переменные окружения SLOTBOOKING_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvSchedulerURL)); v != "" {
		c.Scheduler.URL = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHTTPPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения после применения всех источников
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	u, err := url.Parse(c.Scheduler.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: scheduler.url must be an absolute URL: %q", ErrInvalidConfig, c.Scheduler.URL)
	}
	if c.Scheduler.Timeout <= 0 {
		return fmt.Errorf("%w: scheduler.timeout must be positive", ErrInvalidConfig)
	}

	if c.Sessions.TTLMinutes < 0 || c.Sessions.SweepIntervalSeconds < 0 {
		return fmt.Errorf("%w: sessions values must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	return nil
}
