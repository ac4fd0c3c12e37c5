package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"salary_ledger/models"
)

type Config struct {
	Port            string
	DBPath          string
	MultiTenant     bool
	TenantHeader    string
	DefaultTenant   models.TenantID
	StaticDir       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads .env (when one is found) and then the process environment.
func Load() (*Config, error) {
	envFile, err := loadEnvFile(".env")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "3000"),
		DBPath:       getEnvOrDefault("DB_PATH", "salary.db"),
		TenantHeader: getEnvOrDefault("TENANT_HEADER", "X-Telegram-ID"),
		StaticDir:    getEnvOrDefault("STATIC_DIR", "static"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var errs []error
	if cfg.MultiTenant, err = strconv.ParseBool(getEnvOrDefault("MULTI_TENANT", "true")); err != nil {
		errs = append(errs, fmt.Errorf("%w: MULTI_TENANT: %v", ErrInvalidConfig, err))
	}

	tenant, err := strconv.ParseInt(getEnvOrDefault("DEFAULT_TENANT_ID", "1"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: DEFAULT_TENANT_ID: %v", ErrInvalidConfig, err))
	}
	cfg.DefaultTenant = models.TenantID(tenant)

	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "5s")); err != nil {
		errs = append(errs, fmt.Errorf("%w: SHUTDOWN_TIMEOUT: %v", ErrInvalidConfig, err))
	}

	if cfg.TenantHeader == "" {
		errs = append(errs, fmt.Errorf("%w: TENANT_HEADER is empty", ErrInvalidConfig))
	}
	if cfg.DBPath == "" {
		errs = append(errs, fmt.Errorf("%w: DB_PATH is empty", ErrInvalidConfig))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if envFile == "" {
		log.Printf("Warning: .env file not found, using environment variables")
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
