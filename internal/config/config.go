// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`

	// Database Configuration
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Auth Configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTExpiry time.Duration `mapstructure:"JWT_EXPIRY_MINUTES"`

	// External Services
	AIEngineURL         string        `mapstructure:"AI_ENGINE_URL"`
	GeocoderURL         string        `mapstructure:"GEOCODER_URL"`
	GeocoderAPIKey      string        `mapstructure:"GEOCODER_API_KEY"`
	GooglePlacesAPIKey  string        `mapstructure:"GOOGLE_PLACES_API_KEY"`
	ExternalCallTimeout time.Duration `mapstructure:"EXTERNAL_CALL_TIMEOUT_SECONDS"`

	// Cron Jobs
	ListingCloseJobSchedule string `mapstructure:"LISTING_CLOSE_JOB_SCHEDULE"`
	StaleListingDays        int    `mapstructure:"STALE_LISTING_DAYS"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "5001")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "synapse_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)

	v.SetDefault("AI_ENGINE_URL", "http://127.0.0.1:5002")
	v.SetDefault("GEOCODER_URL", "https://api.opencagedata.com/geocode/v1/json")
	v.SetDefault("GEOCODER_API_KEY", "")
	v.SetDefault("GOOGLE_PLACES_API_KEY", "")
	// Neither the extractor nor the geocoder publishes a latency SLO; a few
	// seconds keeps listing writes responsive when either service hangs.
	v.SetDefault("EXTERNAL_CALL_TIMEOUT_SECONDS", 5)

	v.SetDefault("LISTING_CLOSE_JOB_SCHEDULE", "@daily")
	v.SetDefault("STALE_LISTING_DAYS", 30)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.JWTExpiry = time.Duration(v.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute
	cfg.ExternalCallTimeout = time.Duration(v.GetInt("EXTERNAL_CALL_TIMEOUT_SECONDS")) * time.Second

	// Basic validation for critical configs
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("FATAL: JWT_SECRET is not set. Tokens cannot be signed without it")
	}

	return &cfg, nil
}

// DSN returns the GORM data source name constructed from the DB_* parameters.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBTimezone)
}
