package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a new zerolog logger with structured output
func New(level, format string) zerolog.Logger {
	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339

	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	// JSON output when requested, e.g. when the CLI runs from cron
	if format == "json" {
		return zerolog.New(os.Stderr).
			Level(logLevel).
			With().
			Timestamp().
			Str("service", "crm-edfront").
			Logger()
	}

	// Console output by default; stderr keeps tables on stdout clean
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "crm-edfront").
		Logger()
}
