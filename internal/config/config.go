package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP API settings
	APIAddr string
	APIKey  string
	DevMode bool

	// Logging
	LogLevel string

	// Source extracts
	OrdersCSV   string
	ProductsCSV string

	// Export target for the opt-in write-back
	ExportDir string

	// Currency display settings; the same pair is used everywhere an
	// amount is rendered as currency.
	CurrencyCode   string
	CurrencyLocale string
}

func Load() *Config {
	return &Config{
		// API
		APIAddr: getEnv("API_ADDR", ":8090"),
		APIKey:  getEnv("API_KEY", ""),
		DevMode: getBoolEnv("DEV_MODE", false),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Data
		OrdersCSV:   getEnv("ORDERS_CSV", "data/customer_order.csv"),
		ProductsCSV: getEnv("PRODUCTS_CSV", "data/seller_product.csv"),
		ExportDir:   getEnv("EXPORT_DIR", "export"),

		// Currency
		CurrencyCode:   getEnv("CURRENCY_CODE", "AUD"),
		CurrencyLocale: getEnv("CURRENCY_LOCALE", "es-CO"),
	}
}

func (c *Config) Validate() error {
	if c.APIAddr == "" {
		return fmt.Errorf("API_ADDR must not be empty")
	}
	if c.OrdersCSV == "" {
		return fmt.Errorf("ORDERS_CSV must not be empty")
	}
	if c.ProductsCSV == "" {
		return fmt.Errorf("PRODUCTS_CSV must not be empty")
	}
	if c.CurrencyCode == "" || c.CurrencyLocale == "" {
		return fmt.Errorf("CURRENCY_CODE and CURRENCY_LOCALE must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
