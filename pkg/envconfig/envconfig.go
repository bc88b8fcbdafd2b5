// Package envconfig loads CLI configuration from the environment, with
// optional .env file support.
package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables the omenu CLI reads from the environment.
type Config struct {
	Source   string  // document source tag
	Locale   string  // RFC 5646 language tag
	Currency string  // ISO 4217 code for generated orders
	TaxRate  float64 // applied when generating orders
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Source:   "open_menu_standard",
		Locale:   "en-US",
		Currency: "USD",
		TaxRate:  0.08,
	}
}

// Load reads configuration from the environment, after best-effort
// loading of a .env file. Unset or unparseable variables keep their
// defaults.
func Load() Config {
	_ = godotenv.Load(".env")

	config := DefaultConfig()
	if source := GetEnv("OMENU_SOURCE", ""); source != "" {
		config.Source = source
	}
	if locale := GetEnv("OMENU_LOCALE", ""); locale != "" {
		config.Locale = locale
	}
	if currency := GetEnv("OMENU_CURRENCY", ""); currency != "" {
		config.Currency = currency
	}
	if rateStr := GetEnv("OMENU_TAX_RATE", ""); rateStr != "" {
		if rate, err := strconv.ParseFloat(rateStr, 64); err == nil && rate >= 0 {
			config.TaxRate = rate
		}
	}
	return config
}

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
