package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/lukman83/shopfront/config"
	"github.com/lukman83/shopfront/internal/catalog"
	"github.com/lukman83/shopfront/internal/httputil"
	"github.com/lukman83/shopfront/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Shopfront - storefront CLI & MCP server for a remote product catalog",
	Long:  "A Go-based CLI tool and MCP server for browsing and editing a remote demo product catalog, with a session-scoped shopping cart.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("catalog-url", "", "Base URL of the product catalog API")
	rootCmd.PersistentFlags().String("auth-url", "", "Base URL of the auth API")
	rootCmd.PersistentFlags().String("format", "", "Output format: json, table")
	rootCmd.PersistentFlags().Float64("rate-per-second", 0, "Outbound request rate limit")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("catalog-url"); v != "" {
		cfg.CatalogURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("auth-url"); v != "" {
		cfg.AuthURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("rate-per-second"); v > 0 {
		cfg.RatePerSecond = v
	}
}

// buildHTTPClient creates the rate-limited HTTP client from config.
func buildHTTPClient() *http.Client {
	transport := &httputil.Transport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
		RateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
	return httputil.NewHTTPClient(transport)
}

// newCatalog creates the catalog client from config.
func newCatalog() *catalog.Client {
	return catalog.NewClient(buildHTTPClient(), cfg.CatalogURL, cfg.MaxConcurrent)
}

// newSession creates the auth client from config.
func newSession() *session.Client {
	return session.NewClient(buildHTTPClient(), cfg.AuthURL)
}
