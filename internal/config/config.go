package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки расчета доступности
type ScheduleConfig struct {
	WorkStart                     string `toml:"work_start"`
	WorkEnd                       string `toml:"work_end"`
	IntervalMinutes               int    `toml:"interval_minutes"`
	DefaultServiceDurationMinutes int    `toml:"default_service_duration_minutes"`
	WindowDays                    int    `toml:"window_days"`
	MaxWindowDays                 int    `toml:"max_window_days"`
	ConflictPolicy                string `toml:"conflict_policy"`
	FitServiceBeforeClose         bool   `toml:"fit_service_before_close"`
	StoreTimeoutSeconds           int    `toml:"store_timeout_seconds"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc_schedule_service",
		},
		Schedule: ScheduleConfig{
			WorkStart:                     domain.DefaultWorkStart,
			WorkEnd:                       domain.DefaultWorkEnd,
			IntervalMinutes:               domain.DefaultIntervalMinutes,
			DefaultServiceDurationMinutes: domain.DefaultIntervalMinutes,
			WindowDays:                    domain.DefaultWindowDays,
			MaxWindowDays:                 domain.MaxWindowDays,
			ConflictPolicy:                string(domain.PolicyOverlap),
			StoreTimeoutSeconds:           3,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if _, err := c.Schedule.WorkingHours(); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}

	if c.Schedule.DefaultServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: schedule.default_service_duration_minutes must be positive", ErrInvalidConfig)
	}

	if c.Schedule.WindowDays <= 0 || c.Schedule.MaxWindowDays <= 0 || c.Schedule.WindowDays > c.Schedule.MaxWindowDays {
		return fmt.Errorf("%w: schedule.window_days must be in 1..max_window_days", ErrInvalidConfig)
	}

	if !domain.ConflictPolicy(c.Schedule.ConflictPolicy).IsValid() {
		return fmt.Errorf("%w: schedule.conflict_policy must be %q or %q",
			ErrInvalidConfig, domain.PolicyOverlap, domain.PolicyExact)
	}

	if c.Schedule.StoreTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: schedule.store_timeout_seconds must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// WorkingHours рабочие часы по умолчанию для всех сотрудников
func (s ScheduleConfig) WorkingHours() (domain.WorkingHours, error) {
	start, err := types.NewTimeStringFromString(s.WorkStart)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("work_start: %w", err)
	}

	end, err := types.NewTimeStringFromString(s.WorkEnd)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("work_end: %w", err)
	}

	wh := domain.WorkingHours{
		Start:           start,
		End:             end,
		IntervalMinutes: s.IntervalMinutes,
	}

	if err := wh.Validate(); err != nil {
		return domain.WorkingHours{}, err
	}

	return wh, nil
}

// Policy политика проверки конфликтов
func (s ScheduleConfig) Policy() domain.ConflictPolicy {
	return domain.ConflictPolicy(s.ConflictPolicy)
}

// StoreTimeout ограничение времени на обращения к хранилищу в рамках одного запроса
func (s ScheduleConfig) StoreTimeout() time.Duration {
	return time.Duration(s.StoreTimeoutSeconds) * time.Second
}
