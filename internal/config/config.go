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

	RazorpayKeyID  string
	RazorpaySecret string
	Currency       string

	// Shipping rule parameters; the flat fee is waived above the threshold.
	FreeShippingAbove decimal.Decimal
	FlatShippingFee   decimal.Decimal
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        getEnv("APP_PORT", "8080"),
		AppEnv:         os.Getenv("APP_ENV"),
		RazorpayKeyID:  os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		Currency:       getEnv("CURRENCY", "INR"),

		FreeShippingAbove: getEnvDecimal("FREE_SHIPPING_ABOVE", "500"),
		FlatShippingFee:   getEnvDecimal("FLAT_SHIPPING_FEE", "99"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid decimal value for %s: %q", key, raw)
	}
	return d
}
