package radiogo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with radiogo-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithLibrarySize adds a library_size field to the logger.
func (l *Logger) WithLibrarySize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("library_size", n),
	}
}

// LogMatch logs a match operation.
func (l *Logger) LogMatch(k, librarySize int, err error) {
	if err != nil {
		l.Error("match failed",
			"k", k,
			"library_size", librarySize,
			"error", err,
		)
	} else {
		l.Debug("match completed",
			"k", k,
			"library_size", librarySize,
		)
	}
}

// LogBatchMatch logs a batch match operation.
func (l *Logger) LogBatchMatch(queries, k int, err error) {
	if err != nil {
		l.Error("batch match failed",
			"queries", queries,
			"k", k,
			"error", err,
		)
	} else {
		l.Debug("batch match completed",
			"queries", queries,
			"k", k,
		)
	}
}
