package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string
	DB          DBConfig
}

// DBConfig describes how to reach the relational store
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
}

// Load reads the environment (and .env when present) into a Config
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        GetEnv("PORT", "8000"),
		Env:         GetEnv("ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		DB: DBConfig{
			Driver:   GetEnv("DB_DRIVER", DriverPostgres),
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			User:     GetEnv("DB_USER", "usuario"),
			Password: GetEnv("DB_PASSWORD", GetEnv("DB_PASS", "password123")),
			Name:     GetEnv("DB_NAME", "notasdb"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
			Path:     GetEnv("DB_PATH", "./data/notes.db"),
		},
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the data source name for the configured driver
func (d DBConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path + "?_busy_timeout=5000&_foreign_keys=on"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
