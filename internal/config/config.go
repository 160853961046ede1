package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Gestionale GestionaleConfig `toml:"gestionale"`
	Booking    BookingConfig    `toml:"booking"`
	Contact    ContactConfig    `toml:"contact"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Tracking   TrackingConfig   `toml:"tracking"`
	Sessions   SessionsConfig   `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// GestionaleConfig настройки внешней системы бронирования ("gestionale")
// Пустой BaseURL означает, что используется mock backend
type GestionaleConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// UseMock returns true when no real backend is configured
// The switch is evaluated once at startup, not per request
func (c *GestionaleConfig) UseMock() bool {
	return c.BaseURL == ""
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	MinGuests         int `toml:"min_guests"`
	MaxGuests         int `toml:"max_guests"`
	MaxAdvanceDays    int `toml:"max_advance_days"`
	MinAdvanceHours   int `toml:"min_advance_hours"`
	CancellationHours int `toml:"cancellation_hours"`
}

// ContactConfig контактные данные для handoff-ссылок
type ContactConfig struct {
	Phone    string `toml:"phone"`
	WhatsApp string `toml:"whatsapp"`
	Email    string `toml:"email"`
}

// CatalogConfig расположение справочных данных (esperienze, offerte, FAQ)
type CatalogConfig struct {
	File string `toml:"file"`
}

// TrackingConfig настройки аналитики
// Пустой Endpoint означает, что события только логируются
type TrackingConfig struct {
	Endpoint string `toml:"endpoint"`
}

// SessionsConfig настройки хранилища сессий визарда
type SessionsConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// Load загружает конфигурацию из TOML файла
// API-ключ gestionale может быть переопределён переменной окружения GESTIONALE_API_KEY
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Секреты не храним в файле
	if key := os.Getenv("GESTIONALE_API_KEY"); key != "" {
		cfg.Gestionale.APIKey = key
	}
	if base := os.Getenv("GESTIONALE_API_BASE_URL"); base != "" {
		cfg.Gestionale.BaseURL = base
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "spa-booking-service",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			MinGuests:         1,
			MaxGuests:         10,
			MaxAdvanceDays:    90,
			MinAdvanceHours:   2,
			CancellationHours: 24,
		},
		Catalog:  CatalogConfig{File: "catalog.toml"},
		Sessions: SessionsConfig{TTLMinutes: 30},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Booking.MinGuests < 1 {
		return fmt.Errorf("config: min_guests must be at least 1")
	}
	if c.Booking.MaxGuests < c.Booking.MinGuests {
		return fmt.Errorf("config: max_guests %d is below min_guests %d",
			c.Booking.MaxGuests, c.Booking.MinGuests)
	}
	if c.Catalog.File == "" {
		return fmt.Errorf("config: catalog file is required")
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("config: sessions ttl_minutes must be positive")
	}
	return nil
}
