package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds PostgreSQL connection configuration.
type Config struct {
	// URL, when set, wins over the discrete POSTGRES_* fields.
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// StatementTimeout is applied to every connection via options.
	StatementTimeout time.Duration
}

// LoadConfigFromEnv loads database configuration from the environment.
// DATABASE_URL takes precedence; otherwise POSTGRES_* variables are used.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		URL:              os.Getenv("DATABASE_URL"),
		SSLMode:          getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		ConnMaxLifetime:  30 * time.Minute,
		ConnMaxIdleTime:  5 * time.Minute,
		StatementTimeout: 30 * time.Second,
	}

	maxOpen, err := strconv.Atoi(getEnvOrDefault("POSTGRES_MAX_OPEN_CONNS", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := strconv.Atoi(getEnvOrDefault("POSTGRES_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	cfg.MaxOpenConns = maxOpen
	cfg.MaxIdleConns = maxIdle

	if cfg.URL != "" {
		return cfg, nil
	}

	port, err := strconv.Atoi(getEnvOrDefault("POSTGRES_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}

	cfg.Host = getEnvOrDefault("POSTGRES_HOST", "localhost")
	cfg.Port = port
	cfg.User = getEnvOrDefault("POSTGRES_USER", "butlerd")
	cfg.Password = os.Getenv("POSTGRES_PASSWORD")
	cfg.Database = getEnvOrDefault("POSTGRES_DB", "butlerd")
	return cfg, nil
}

// DSN builds the pgx-compatible connection string with the schema-scoped
// search path. The butler's own schema shadows shared, which shadows public.
func (c Config) DSN(searchPath string) string {
	options := fmt.Sprintf("-c search_path=%s", searchPath)
	if c.StatementTimeout > 0 {
		options += fmt.Sprintf(" -c statement_timeout=%d", c.StatementTimeout.Milliseconds())
	}
	if c.URL != "" {
		sep := "?"
		if strings.ContainsRune(c.URL, '?') {
			sep = "&"
		}
		return c.URL + sep + "options=" + url.QueryEscape(options)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s options='%s'",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode, options,
	)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
