package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultServiceName          = "lieferspatz"
	defaultServerPort           = 8080
	defaultCustomerStartBalance = "100.00"
	defaultMenuIndex            = "menu_items"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	// DatabaseURL empty means an in-memory SQLite database.
	DatabaseURL string

	CustomerStartBalance decimal.Decimal

	KafkaBrokers []string

	ESURL       string
	ESUser      string
	ESPassword  string
	ESMenuIndex string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	balance, err := decimal.NewFromString(EnvDefault("CUSTOMER_START_BALANCE", defaultCustomerStartBalance))
	if err != nil {
		return nil, fmt.Errorf("CUSTOMER_START_BALANCE: %w", err)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("CUSTOMER_START_BALANCE must not be negative, got %s", balance)
	}

	cfg := &Config{
		ServiceName: EnvDefault("SERVICE_NAME", defaultServiceName),
		ServerPort:  EnvIntDefault("SERVER_PORT", defaultServerPort),
		LogLevel:    os.Getenv("LOG_LEVEL"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		CustomerStartBalance: balance,

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:       os.Getenv("ES_URL"),
		ESUser:      os.Getenv("ES_USER"),
		ESPassword:  os.Getenv("ES_PASSWORD"),
		ESMenuIndex: EnvDefault("ES_MENU_INDEX", defaultMenuIndex),
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
