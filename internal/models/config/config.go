package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config основной конфиг
type Config struct {
	Environment string
	HTTPPort    string
	LogLevel    string
	Bot         BotConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Ledger      LedgerConfig
}

type BotConfig struct {
	Token string
	Debug bool
}

// Enabled - бот запускается только при наличии токена
func (c BotConfig) Enabled() bool {
	return c.Token != ""
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LedgerConfig параметры расчётов
type LedgerConfig struct {
	// AdminID - счёт администратора, на который зачисляется выручка
	AdminID        int64
	DayRate        decimal.Decimal
	Location       *time.Location
	ExpirySchedule string
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
