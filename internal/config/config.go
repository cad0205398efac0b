package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
)

// ErrInvalidConfig возвращается при невалидных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Inventory      InventoryConfig      `toml:"inventory"`
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

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogServiceConfig настройки клиента каталога номеров
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// InventoryConfig ограничения запросов доступности
type InventoryConfig struct {
	MaxStayNights    int `toml:"max_stay_nights"`
	MaxDashboardDays int `toml:"max_dashboard_days"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse читает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию, поверх которых читается файл
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
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "inventory-service",
		},
		CatalogService: CatalogServiceConfig{
			Timeout: 5,
		},
		Inventory: InventoryConfig{
			MaxStayNights:    domain.DefaultMaxStayNights,
			MaxDashboardDays: domain.DefaultMaxDashboardDays,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("%w: catalog_service.url is required", ErrInvalidConfig)
	}
	if c.CatalogService.Timeout <= 0 {
		return fmt.Errorf("%w: catalog_service.timeout=%d", ErrInvalidConfig, c.CatalogService.Timeout)
	}
	if c.Inventory.MaxStayNights <= 0 || c.Inventory.MaxStayNights > domain.MaxStayNights {
		return fmt.Errorf("%w: inventory.max_stay_nights=%d", ErrInvalidConfig, c.Inventory.MaxStayNights)
	}
	if c.Inventory.MaxDashboardDays <= 0 {
		return fmt.Errorf("%w: inventory.max_dashboard_days=%d", ErrInvalidConfig, c.Inventory.MaxDashboardDays)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
