package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// AppURL is the public origin used for canonical URLs, alternates,
	// JSON-LD, and the sitemap.
	AppURL string
	// StaticDir holds css/js/images served under /static and the
	// root-level static files (robots.txt, favicon).
	StaticDir string
	// ContentDir is scanned for the sitemap last-modified timestamp.
	ContentDir string
	// AnalyticsToken enables the third-party telemetry snippet when
	// non-empty.
	AnalyticsToken string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppURL:         strings.TrimRight(getEnv("APP_URL", "https://coluccilawfirm.com"), "/"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		ContentDir:     getEnv("CONTENT_DIR", "content"),
		AnalyticsToken: getEnv("ANALYTICS_TOKEN", ""),
	}
}

// IsProduction reports whether production-only behavior, such as the
// telemetry snippet, is enabled.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
