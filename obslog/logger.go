// Package obslog provides the structured logger used by the CLI harness and
// the HTTP façade. The solver core never logs: it is a pure, deterministic
// function of its inputs, so observability lives entirely in the
// collaborators that call it.
package obslog

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Level names accepted by LoggerConfig.Level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level     Level
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
}

// DefaultLoggerConfig returns the configuration used when callers pass nil:
// info-level text output on stderr, keeping stdout free for the CLI's
// solution summary.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Logger wraps slog.Logger.
type Logger struct {
	*slog.Logger
	config *LoggerConfig
}

// NewLogger creates a structured logger from config (nil selects
// DefaultLoggerConfig).
func NewLogger(config *LoggerConfig) *Logger {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	var level slog.Level
	switch config.Level {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelWarn:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: config.AddSource}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{Logger: slog.New(handler), config: config}
}

// WithField returns a logger with an additional field attached to every
// record.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Logger: l.Logger.With(key, value), config: l.config}
}

// LogSolve emits the one structured line per solve that both the CLI and
// the HTTP façade produce.
func (l *Logger) LogSolve(instanceName string, numCustomers, vehicles int, baseCost float64, duration time.Duration) {
	l.Info("solve complete",
		"instance", instanceName,
		"customers", numCustomers,
		"vehicles", vehicles,
		"base_cost", baseCost,
		"duration", duration,
	)
}

// LogHTTPRequest logs one HTTP request line; used by the façade's logging
// middleware.
func (l *Logger) LogHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	l.Info("http request",
		"method", method,
		"path", path,
		"status", statusCode,
		"duration", duration,
	)
}
