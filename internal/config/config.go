package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string

	// TaxRate is applied to the cart subtotal at checkout, e.g. "0.10".
	TaxRate decimal.Decimal
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TaxRate:    loadTaxRate(),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func loadTaxRate() decimal.Decimal {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		raw = "0.10"
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Fatalf("Invalid TAX_RATE %q", raw)
	}

	return rate
}
