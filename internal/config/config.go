// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Timeouts  TimeoutConfig
	Logging   LoggingConfig
	App       AppConfig
	Provider  ProviderConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for offer search operations.
type TimeoutConfig struct {
	ProviderSearch time.Duration `env:"TIMEOUT_PROVIDER_SEARCH" envDefault:"5s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// ProviderConfig holds the live fare provider connection settings.
// An empty BaseURL disables the live provider and the service runs in
// sample-only mode.
type ProviderConfig struct {
	BaseURL  string        `env:"SKYLINK_BASE_URL"`
	APIToken string        `env:"SKYLINK_API_TOKEN"`
	Timeout  time.Duration `env:"SKYLINK_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a live provider is configured.
func (p ProviderConfig) Enabled() bool {
	return p.BaseURL != ""
}

// CacheConfig holds Redis search-cache settings.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// RateLimitConfig holds provider rate limiting settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"PROVIDER_RATE_LIMIT" envDefault:"10"`
	BurstSize         int     `env:"PROVIDER_RATE_BURST" envDefault:"20"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.ProviderSearch <= 0 {
		return fmt.Errorf("TIMEOUT_PROVIDER_SEARCH must be positive")
	}

	if cfg.Provider.Enabled() && cfg.Provider.APIToken == "" {
		return fmt.Errorf("SKYLINK_API_TOKEN is required when SKYLINK_BASE_URL is set")
	}
	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("SKYLINK_TIMEOUT must be positive")
	}

	if cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required when CACHE_ENABLED is true")
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("PROVIDER_RATE_LIMIT must be positive")
	}
	if cfg.RateLimit.BurstSize < 1 {
		return fmt.Errorf("PROVIDER_RATE_BURST must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
