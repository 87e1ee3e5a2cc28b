// Package logging provides a structured logger backed by zerolog.
//
// Output goes to stderr so it never interferes with the stdio transport
// carrying tool traffic on stdout.
package logging

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger is the structured logging interface used across the server.
type Logger interface {
	// Debug logs a debug message with optional fields
	Debug(ctx context.Context, msg string, fields map[string]interface{})

	// Info logs an informational message with optional fields
	Info(ctx context.Context, msg string, fields map[string]interface{})

	// Warn logs a warning message with optional fields
	Warn(ctx context.Context, msg string, fields map[string]interface{})

	// Error logs an error message with optional fields
	Error(ctx context.Context, msg string, fields map[string]interface{})
}

var jsonEnabled atomic.Bool

// SetZeroLogJsonEnabled switches loggers created afterwards to JSON output.
// The default is human-readable console output.
func SetZeroLogJsonEnabled() {
	jsonEnabled.Store(true)
}

// New creates a new Logger writing to stderr.
//
// The log level defaults to info and can be changed with the LOG_LEVEL
// environment variable (trace, debug, info, warn, error).
func New() Logger {
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	var zl zerolog.Logger
	if jsonEnabled.Load() {
		zl = zerolog.New(os.Stderr)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zl = zl.Level(level).With().Timestamp().Logger()

	return &zerologLogger{logger: zl}
}

// NewNoOp creates a Logger that discards everything. Intended for tests.
func NewNoOp() Logger {
	return &zerologLogger{logger: zerolog.Nop()}
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(l.logger.Debug(), msg, fields)
}

func (l *zerologLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(l.logger.Info(), msg, fields)
}

func (l *zerologLogger) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(l.logger.Warn(), msg, fields)
}

func (l *zerologLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.emit(l.logger.Error(), msg, fields)
}

func (l *zerologLogger) emit(event *zerolog.Event, msg string, fields map[string]interface{}) {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
