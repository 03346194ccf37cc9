package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// DatabaseConfig конфигурация БД
type DatabaseConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
	Migrate  bool
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Name, c.SSLMode,
	)
}

// Load загружает конфигурацию
func Load() (*Config, error) {
	// .env необязателен, в контейнере всё приходит из окружения
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	var errs []string

	dayRate, err := decimal.NewFromString(getEnv("LEDGER_DAY_RATE", "1.00"))
	if err != nil {
		errs = append(errs, "LEDGER_DAY_RATE must be a decimal number")
	}

	loc, err := time.LoadLocation(getEnv("LEDGER_TIMEZONE", "UTC"))
	if err != nil {
		errs = append(errs, "LEDGER_TIMEZONE is not a valid IANA zone")
		loc = time.UTC
	}

	cfg := &Config{
		Environment: env,
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Bot: BotConfig{
			Token: getEnv("BOT_TOKEN", ""),
			Debug: getEnvAsBool("BOT_DEBUG", env != "production"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "gym"),
			SSLMode:  getSSLMode(env),
			Migrate:  getEnvAsBool("DB_MIGRATE", env != "production"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Ledger: LedgerConfig{
			AdminID:        int64(getEnvAsInt("LEDGER_ADMIN_ID", 1)),
			DayRate:        dayRate,
			Location:       loc,
			ExpirySchedule: getEnv("LEDGER_EXPIRY_CRON", "5 0 * * *"),
		},
	}

	errs = append(errs, validate(cfg)...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(errs, ", "))
	}

	return cfg, nil
}

// validate проверяет обязательные параметры
func validate(cfg *Config) []string {
	var errors []string

	if cfg.Database.Username == "" {
		errors = append(errors, "DB_USER is required")
	}

	if cfg.Database.Password == "" && cfg.IsProduction() {
		errors = append(errors, "DB_PASSWORD is required in production")
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			errors = append(errors, "JWT_SECRET is required in production")
		} else {
			cfg.Auth.JWTSecret = "dev-secret"
		}
	}

	if cfg.Ledger.AdminID <= 0 {
		errors = append(errors, "LEDGER_ADMIN_ID must be positive")
	}

	if cfg.Ledger.DayRate.IsNegative() {
		errors = append(errors, "LEDGER_DAY_RATE must not be negative")
	}

	return errors
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
