package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, переопределяющие значения из файла
const (
	EnvJWTSecret     = "CARWASH_JWT_SECRET"
	EnvHTTPPort      = "CARWASH_HTTP_PORT"
	EnvDBPassword    = "CARWASH_DB_PASSWORD"
	EnvRedisPassword = "CARWASH_REDIS_PASSWORD"
	EnvLogLevel      = "CARWASH_LOG_LEVEL"
)

// Хранилища отозванных токенов
const (
	RevocationStoreMemory = "memory"
	RevocationStoreRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Booking     BookingConfig     `toml:"booking"`
	Auth        AuthConfig        `toml:"auth"`
	Redis       RedisConfig       `toml:"redis"`
	Database    DatabaseConfig    `toml:"database"`
	UserService UserServiceConfig `toml:"user_service"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логгера
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры дашбордов
type BookingConfig struct {
	WindowDays                int    `toml:"window_days"`
	ToastTTLMs                int    `toml:"toast_ttl_ms"`
	SimulationEnabled         bool   `toml:"simulation_enabled"`
	SimulationIntervalSeconds int    `toml:"simulation_interval_seconds"`
	SeedFile                  string `toml:"seed_file"` // пусто = встроенные демо-данные
}

// ToastTTL время жизни уведомления
func (c BookingConfig) ToastTTL() time.Duration {
	return time.Duration(c.ToastTTLMs) * time.Millisecond
}

// SimulationInterval период симуляции входящих бронирований
func (c BookingConfig) SimulationInterval() time.Duration {
	return time.Duration(c.SimulationIntervalSeconds) * time.Second
}

// AuthConfig параметры сессий
type AuthConfig struct {
	JWTSecret          string `toml:"jwt_secret"`
	Issuer             string `toml:"issuer"`
	RevocationStore    string `toml:"revocation_store"` // memory | redis
	DevTokenTTLMinutes int    `toml:"dev_token_ttl_minutes"` // 0 = выдача dev-токенов выключена
}

// DevTokenTTL время жизни dev-токена
func (c AuthConfig) DevTokenTTL() time.Duration {
	return time.Duration(c.DevTokenTTLMinutes) * time.Minute
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// DatabaseConfig параметры подключения к PostgreSQL (справочник пользователей)
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

// UserServiceConfig параметры клиента UserService; пустой URL = не используется
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла и применяет переопределения из окружения
// .env в рабочей директории необязателен
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrParse, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	return Parse(data)
}

// Parse разбирает TOML, применяет значения по умолчанию, окружение и валидирует результат
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
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
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "wash_dashboard",
		},
		Booking: BookingConfig{
			WindowDays:                30,
			ToastTTLMs:                5000,
			SimulationEnabled:         true,
			SimulationIntervalSeconds: 30,
		},
		Auth: AuthConfig{
			Issuer:          "carwash-auth",
			RevocationStore: RevocationStoreMemory,
		},
		Redis: RedisConfig{
			Address:  "localhost:6379",
			PoolSize: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		UserService: UserServiceConfig{
			Timeout: 5,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrValidation, c.Server.HTTPPort)
	}
	if c.Booking.WindowDays <= 0 {
		return fmt.Errorf("%w: booking.window_days must be positive", ErrValidation)
	}
	if c.Booking.ToastTTLMs <= 0 {
		return fmt.Errorf("%w: booking.toast_ttl_ms must be positive", ErrValidation)
	}
	if c.Booking.SimulationEnabled && c.Booking.SimulationIntervalSeconds <= 0 {
		return fmt.Errorf("%w: booking.simulation_interval_seconds must be positive", ErrValidation)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrValidation, EnvJWTSecret)
	}
	if c.Auth.DevTokenTTLMinutes < 0 {
		return fmt.Errorf("%w: auth.dev_token_ttl_minutes must not be negative", ErrValidation)
	}

	switch c.Auth.RevocationStore {
	case RevocationStoreMemory:
	case RevocationStoreRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("%w: redis.address is required for redis revocation store", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: auth.revocation_store=%q", ErrValidation, c.Auth.RevocationStore)
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrValidation)
	}
	if c.UserService.URL != "" && c.UserService.Timeout <= 0 {
		return fmt.Errorf("%w: user_service.timeout must be positive", ErrValidation)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrParse, EnvHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logs.Level = v
	}
	return nil
}
