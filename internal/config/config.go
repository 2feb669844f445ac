package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Cache    CacheConfig
}

type DatabaseConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
	MigrationsDir string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// CacheConfig holds lifetimes of derived results
type CacheConfig struct {
	CalendarTTL time.Duration
	ReportTTL   time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	runMigrations, err := strconv.ParseBool(getEnv("RUN_MIGRATIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid RUN_MIGRATIONS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          dbPort,
		User:          getEnv("DB_USER", "postgres"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "hris_payroll"),
		SSLMode:       getEnv("DB_SSL_MODE", "disable"),
		RunMigrations: runMigrations,
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Cache configuration
	calendarTTL, err := time.ParseDuration(getEnv("CALENDAR_CACHE_TTL", "3m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_CACHE_TTL: %w", err)
	}
	reportTTL, err := time.ParseDuration(getEnv("REPORT_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL: %w", err)
	}

	config.Cache = CacheConfig{
		CalendarTTL: calendarTTL,
		ReportTTL:   reportTTL,
	}

	// Validate required fields
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
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Cache.CalendarTTL <= 0 || c.Cache.ReportTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
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

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
