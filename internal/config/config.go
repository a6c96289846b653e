package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/prescriber-availability/internal/domain"
	"github.com/m04kA/prescriber-availability/pkg/types"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	UserService  UserServiceConfig  `toml:"user_service"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig параметры кеша расписаний; пустой addr отключает кеш
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
	KeyPrefix  string `toml:"key_prefix"`
}

// Enabled кеш включен
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// UserServiceConfig параметры клиента UserService; пустой url отключает проверку пациента
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// RateLimitConfig ограничение частоты создания бронирований (работает только с redis)
type RateLimitConfig struct {
	Enabled   bool   `toml:"enabled"`
	PerMinute int    `toml:"per_minute"`
	Prefix    string `toml:"prefix"`
	FailOpen  bool   `toml:"fail_open"`
}

// AvailabilityConfig параметры проекции расписания
type AvailabilityConfig struct {
	HorizonDays      int    `toml:"horizon_days"`
	IncrementMinutes int    `toml:"increment_minutes"`
	DefaultStartTime string `toml:"default_start_time"`
	DefaultEndTime   string `toml:"default_end_time"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 300
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "availability"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "prescriber-availability"
	}

	if c.UserService.Timeout == 0 {
		c.UserService.Timeout = 5
	}

	if c.RateLimit.PerMinute == 0 {
		c.RateLimit.PerMinute = 30
	}
	if c.RateLimit.Prefix == "" {
		c.RateLimit.Prefix = "rl:bookings"
	}

	if c.Availability.HorizonDays == 0 {
		c.Availability.HorizonDays = domain.DefaultHorizonDays
	}
	if c.Availability.IncrementMinutes == 0 {
		c.Availability.IncrementMinutes = domain.DefaultIncrementMinutes
	}
	if c.Availability.DefaultStartTime == "" {
		c.Availability.DefaultStartTime = domain.DefaultStartTime
	}
	if c.Availability.DefaultEndTime == "" {
		c.Availability.DefaultEndTime = domain.DefaultEndTime
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	a := c.Availability
	if a.HorizonDays < domain.MinHorizonDays || a.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: availability.horizon_days must be between %d and %d",
			ErrInvalidConfig, domain.MinHorizonDays, domain.MaxHorizonDays)
	}
	if a.IncrementMinutes < domain.MinIncrementMinutes || a.IncrementMinutes > domain.MaxIncrementMinutes {
		return fmt.Errorf("%w: availability.increment_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinIncrementMinutes, domain.MaxIncrementMinutes)
	}

	start, err := types.NewTimeStringFromString(a.DefaultStartTime)
	if err != nil {
		return fmt.Errorf("%w: availability.default_start_time: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(a.DefaultEndTime)
	if err != nil {
		return fmt.Errorf("%w: availability.default_end_time: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: availability.default_start_time must be before default_end_time", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("%w: rate_limit.per_minute must be positive", ErrInvalidConfig)
	}

	return nil
}
