// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"offer-pricing"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "offer-pricing",
	}
}

// Logger wraps zerolog.Logger with service context.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger with the given configuration.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with a custom output writer.
// This is useful for testing.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return &Logger{
		Logger: zerolog.New(writer).
			Level(level).
			With().
			Timestamp().
			Str("service", cfg.ServiceName).
			Logger(),
	}
}

// WithContext returns a new logger with an additional context field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithProvider returns a logger with fare-provider context.
func (l *Logger) WithProvider(provider string) *Logger {
	return l.WithContext("provider", provider)
}

// Nop returns a disabled logger that produces no output.
// Useful for testing when logs are not needed.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}
