package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"pet-care-companion/internal/platform/dates"
	"pet-care-companion/internal/platform/logger"
)

const (
	DriverAuto     = "auto"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config del servicio. Variables con prefijo PETCARE_ (ej: PETCARE_HTTP_PORT).
type Config struct {
	HTTPPort     int           `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`

	// auto: postgres si hay DSN, si no in-memory.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/petcare.db"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"pet-care-companion"`

	// Zona usada para decidir qué es "hoy" y "mañana".
	TimeZone  string `envconfig:"TIMEZONE" default:"UTC"`
	WeekStart string `envconfig:"WEEK_START" default:"sunday"`

	SeedSampleData        bool   `envconfig:"SEED_SAMPLE_DATA" default:"true"`
	DefaultReportLocation string `envconfig:"DEFAULT_REPORT_LOCATION" default:"Bogotá, Colombia"`

	location  *time.Location
	weekStart time.Weekday
}

// New parsea variables de entorno y resuelve defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PETCARE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults valida valores y deriva el driver cuando es "auto".
func (c *Config) ResolveDefaults() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver == "" || c.DBDriver == DriverAuto {
		if strings.TrimSpace(c.PostgresDSN) != "" {
			c.DBDriver = DriverPostgres
		} else {
			c.DBDriver = DriverMemory
		}
	}

	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("DB_DRIVER=sqlite requires SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}

	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(c.TimeZone))
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.location = loc

	ws, err := dates.ParseWeekday(c.WeekStart)
	if err != nil {
		return fmt.Errorf("invalid WEEK_START: %w", err)
	}
	c.weekStart = ws

	return nil
}

// NewForTesting arma una config in-memory sin leer el entorno.
func NewForTesting() *Config {
	cfg := &Config{
		HTTPPort:              8080,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          10 * time.Second,
		DBDriver:              DriverMemory,
		LogLevel:              "debug",
		LogFormat:             "text",
		AppName:               "pet-care-companion-test",
		TimeZone:              "UTC",
		WeekStart:             "sunday",
		SeedSampleData:        false,
		DefaultReportLocation: "Bogotá, Colombia",
	}
	_ = cfg.ResolveDefaults()
	return cfg
}

func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

func (c *Config) FirstWeekday() time.Weekday {
	return c.weekStart
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
