package config

import (
	"os"
	"strconv"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	SpannerDB string
	HTTPPort  string
	LogLevel  string
	Dev       bool
	Search    contracts.SearchConfig
}

// Load reads configuration from environment variables with defaults
// suitable for local development against the Spanner emulator.
func Load() *Config {
	return &Config{
		SpannerDB: getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/catalog-db"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Dev:       getEnv("APP_ENV", "development") == "development",
		Search: contracts.SearchConfig{
			HomeCategoryID:          getEnvInt64("HOME_CATEGORY_ID", 2),
			ShopID:                  getEnvInt64("SHOP_ID", 1),
			FullTree:                getEnvBool("FULL_TREE", true),
			FilterByDefaultCategory: getEnvBool("FILTER_BY_DEFAULT_CATEGORY", false),
			StockManagement:         getEnvBool("STOCK_MANAGEMENT", true),
			OrderOutOfStock:         getEnvBool("ORDER_OUT_OF_STOCK", false),
			GroupRestrictionActive:  getEnvBool("GROUP_RESTRICTION", false),
			CurrentGroupID:          getEnvInt64("DEFAULT_GROUP_ID", 1),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
