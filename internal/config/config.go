package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/momonail/booking-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml один раз при старте
// и передается в конструкторы явно - глобального состояния нет
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
	Line     LineConfig     `toml:"line"`
	Email    EmailConfig    `toml:"email"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig настройки салона в этом развертывании
type SalonConfig struct {
	// ID салона по умолчанию (single-tenant развертывание)
	DefaultSalonID int64 `toml:"default_salon_id"`

	// Режим вычисления доступности: "window" или "slots"
	// Режимы взаимоисключающие - выбирается один на развертывание
	AvailabilityMode string `toml:"availability_mode"`
}

// Mode возвращает типизированный режим доступности
func (s *SalonConfig) Mode() domain.AvailabilityMode {
	return domain.AvailabilityMode(s.AvailabilityMode)
}

// LineConfig настройки LINE Messaging API
type LineConfig struct {
	Enabled            bool   `toml:"enabled"`
	ChannelAccessToken string `toml:"channel_access_token"`
	RecipientID        string `toml:"recipient_id"` // LINE user ID владельца салона
	Timeout            int    `toml:"timeout"`      // секунды
}

// EmailConfig настройки SMTP
type EmailConfig struct {
	Enabled      bool   `toml:"enabled"`
	SMTPHost     string `toml:"smtp_host"`
	SMTPPort     int    `toml:"smtp_port"`
	From         string `toml:"from"`
	Password     string `toml:"password"`
	AdminAddress string `toml:"admin_address"`
}

// AuthConfig настройки аутентификации staff-эндпоинтов
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database.host and database.dbname are required")
	}
	if c.Salon.DefaultSalonID <= 0 {
		return fmt.Errorf("salon.default_salon_id must be positive")
	}
	if !c.Salon.Mode().Valid() {
		return fmt.Errorf("salon.availability_mode must be %q or %q",
			domain.ModeWindow, domain.ModeSlots)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}
	return nil
}
