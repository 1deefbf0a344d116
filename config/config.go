// config.go - Handles configuration for the shop

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv" // Optional .env file support
)

type Config struct { // Config holds every setting read at process start
	Port           string        // HTTP listen port
	GinMode        string        // gin.DebugMode / gin.ReleaseMode / gin.TestMode
	StaticDir      string        // Directory with product images, served under /static
	DBPath         string        // Path to the SQLite database file
	DBMaxOpenConns int           // Size of the database/sql connection pool
	SessionSecret  string        // HMAC key used to sign session tokens
	SessionTTL     time.Duration // Lifetime of a login session
	CookieSecure   bool          // Mark the session cookie Secure (serve behind TLS)
	AdminUsername  string        // Seeded admin account name
	AdminPassword  string        // Seeded admin account password (only used on first seed)
	MQTTBroker     string        // MQTT broker address; empty disables order notifications
	MQTTClientID   string        // Client id presented to the broker
	MQTTOrderTopic string        // Topic that receives placed orders
	LogLevel       string        // zerolog level name
	LogPretty      bool          // Human readable console logs instead of JSON
	StrictPrices   bool          // Reject cart additions whose price differs from the catalog
}

func Load() *Config { // Load reads config from the environment (and .env) or uses defaults
	_ = godotenv.Load() // A missing .env file is fine, real env vars still apply

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		DBPath:         getEnv("DB_PATH", "shop.db"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 4),
		SessionSecret:  getEnv("SESSION_SECRET", ""),
		SessionTTL:     getEnvDuration("SESSION_TTL", 72*time.Hour),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		MQTTBroker:     getEnv("MQTT_BROKER", ""),
		MQTTClientID:   getEnv("MQTT_CLIENT_ID", "go-food-shop"),
		MQTTOrderTopic: getEnv("MQTT_ORDER_TOPIC", "shop/orders"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvBool("LOG_PRETTY", false),
		StrictPrices:   getEnvBool("STRICT_CATALOG_PRICES", false),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be set")
	}
	if c.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
