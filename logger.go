package moogo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/moogo/config"
)

// Logger wraps slog.Logger with moogo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(os.Stderr, "json", level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(os.Stderr, "text", level)
}

// NewLoggerFromConfig creates a Logger writing to w with the configured level and format.
func NewLoggerFromConfig(w io.Writer, c config.LoggingConfig) *Logger {
	return newLogger(w, c.Format, c.SlogLevel())
}

func newLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithSet adds a set ID field to the logger.
func (l *Logger) WithSet(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", id),
	}
}

// WithReport adds a report ID field to the logger.
func (l *Logger) WithReport(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("report", id),
	}
}

// LogOperation logs a completed indicator operation.
func (l *Logger) LogOperation(ctx context.Context, op string, rows, dimension int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed",
			"op", op,
			"rows", rows,
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operation completed",
			"op", op,
			"rows", rows,
			"dimension", dimension,
			"duration", elapsed,
		)
	}
}

// LogEvaluation logs a finished report run.
func (l *Logger) LogEvaluation(ctx context.Context, sets int, indicators []string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluation failed",
			"sets", sets,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "evaluation completed",
			"sets", sets,
			"indicators", indicators,
		)
	}
}
