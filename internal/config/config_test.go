package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Timeout defaults
	assert.Equal(t, "5s", cfg.Timeouts.ProviderSearch.String(), "default provider search timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")

	// Provider defaults: no base URL means sample-only mode
	assert.False(t, cfg.Provider.Enabled())
	assert.Equal(t, "10s", cfg.Provider.Timeout.String())

	// Cache defaults
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, "5m0s", cfg.Cache.TTL.String())

	// Rate limit defaults
	assert.Equal(t, float64(10), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.BurstSize)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":             "3000",
		"SERVER_READ_TIMEOUT":     "30s",
		"SERVER_WRITE_TIMEOUT":    "30s",
		"TIMEOUT_PROVIDER_SEARCH": "8s",
		"LOG_LEVEL":               "debug",
		"LOG_FORMAT":              "console",
		"APP_ENV":                 "production",
		"SKYLINK_BASE_URL":        "https://api.skylink.example",
		"SKYLINK_API_TOKEN":       "tok_123",
		"SKYLINK_TIMEOUT":         "15s",
		"CACHE_ENABLED":           "true",
		"REDIS_ADDR":              "redis:6379",
		"CACHE_TTL":               "10m",
		"PROVIDER_RATE_LIMIT":     "5",
		"PROVIDER_RATE_BURST":     "10",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "8s", cfg.Timeouts.ProviderSearch.String())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
	assert.True(t, cfg.Provider.Enabled())
	assert.Equal(t, "https://api.skylink.example", cfg.Provider.BaseURL)
	assert.Equal(t, "tok_123", cfg.Provider.APIToken)
	assert.Equal(t, "15s", cfg.Provider.Timeout.String())
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.Equal(t, "10m0s", cfg.Cache.TTL.String())
	assert.Equal(t, float64(5), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.BurstSize)
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 1", "1", false},
		{"valid port 8080", "8080", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port negative", "-1", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero provider search timeout", "TIMEOUT_PROVIDER_SEARCH", "0s", "TIMEOUT_PROVIDER_SEARCH must be positive"},
		{"zero provider timeout", "SKYLINK_TIMEOUT", "0s", "SKYLINK_TIMEOUT must be positive"},
		{"zero cache ttl", "CACHE_TTL", "0s", "CACHE_TTL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_ProviderTokenRequired tests that a base URL without a token fails.
func TestLoad_Validation_ProviderTokenRequired(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SKYLINK_BASE_URL": "https://api.skylink.example",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SKYLINK_API_TOKEN is required")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_RateLimit tests rate limit validation.
func TestLoad_Validation_RateLimit(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero rate", "PROVIDER_RATE_LIMIT", "0", "PROVIDER_RATE_LIMIT must be positive"},
		{"negative rate", "PROVIDER_RATE_LIMIT", "-1", "PROVIDER_RATE_LIMIT must be positive"},
		{"zero burst", "PROVIDER_RATE_BURST", "0", "PROVIDER_RATE_BURST must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_EnvHelpers tests the IsDevelopment and IsProduction helpers.
func TestConfig_EnvHelpers(t *testing.T) {
	tests := []struct {
		env           string
		isDevelopment bool
		isProduction  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.isDevelopment, cfg.IsDevelopment())
			assert.Equal(t, tt.isProduction, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"TIMEOUT_PROVIDER_SEARCH",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
		"SKYLINK_BASE_URL",
		"SKYLINK_API_TOKEN",
		"SKYLINK_TIMEOUT",
		"CACHE_ENABLED",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"CACHE_TTL",
		"PROVIDER_RATE_LIMIT",
		"PROVIDER_RATE_BURST",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
