package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	HR       HRConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// HRConfig holds the tunables of the schedule-integrity core.
type HRConfig struct {
	// OvertimeDailyCap bounds total approved overtime per employee per
	// date. Zero disables the cap.
	OvertimeDailyCap time.Duration

	// LockWait bounds how long a request waits for the per-employee
	// exclusive section before failing with a retryable error.
	LockWait time.Duration

	// PendingSweepInterval controls the periodic job that logs requests
	// stuck in pending.
	PendingSweepInterval time.Duration
	PendingSweepAge      time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "schedule-backend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	overtimeCap, err := time.ParseDuration(getEnv("OVERTIME_DAILY_CAP", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_DAILY_CAP: %w", err)
	}
	lockWait, err := time.ParseDuration(getEnv("EMPLOYEE_LOCK_WAIT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMPLOYEE_LOCK_WAIT: %w", err)
	}
	sweepInterval, err := time.ParseDuration(getEnv("PENDING_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PENDING_SWEEP_INTERVAL: %w", err)
	}
	sweepAge, err := time.ParseDuration(getEnv("PENDING_SWEEP_AGE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PENDING_SWEEP_AGE: %w", err)
	}
	config.HR = HRConfig{
		OvertimeDailyCap:     overtimeCap,
		LockWait:             lockWait,
		PendingSweepInterval: sweepInterval,
		PendingSweepAge:      sweepAge,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.HR.LockWait <= 0 {
		return fmt.Errorf("EMPLOYEE_LOCK_WAIT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
