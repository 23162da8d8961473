package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Remote endpoints
	CatalogURL string // base URL of the product catalog API
	AuthURL    string // base URL of the login/auth API

	// Rate limiting for outbound requests
	RatePerSecond float64
	RateBurst     int
	MaxConcurrent int

	// HTTP server (MCP over HTTP)
	HTTPPort string
	APIKey   string

	// Session token storage
	TokenFile string // path used when --remember is set

	// Output
	Format string // "json" or "table"
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CatalogURL:    "https://dummyjson.com/products",
		AuthURL:       "https://dummyjson.com/auth",
		RatePerSecond: 5.0,
		RateBurst:     5,
		MaxConcurrent: 4,
		HTTPPort:      "8080",
		TokenFile:     defaultTokenFile(),
		Format:        "table",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("SHOPFRONT_CATALOG_URL"); v != "" {
		c.CatalogURL = v
	}
	if v := os.Getenv("SHOPFRONT_AUTH_URL"); v != "" {
		c.AuthURL = v
	}
	if v := os.Getenv("SHOPFRONT_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("SHOPFRONT_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("SHOPFRONT_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrent = n
		}
	}
	if v := os.Getenv("SHOPFRONT_TOKEN_FILE"); v != "" {
		c.TokenFile = v
	}
	if v := os.Getenv("SHOPFRONT_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("SHOPFRONT_API_KEY"); v != "" {
		c.APIKey = v
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".shopfront-token"
	}
	return filepath.Join(dir, "shopfront", "token")
}
