package syskit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with syskit-specific context.
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
// This is the default: a system-call layer stays silent unless configured.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogRestart logs a native call that was interrupted by a signal and
// is about to be issued again.
func (l *Logger) LogRestart(ctx context.Context, op string, attempt int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "native call interrupted, restarting",
		"op", op,
		"attempt", attempt,
	)
}

// LogRelease logs the release of an owned handle.
//
// Failures of automatic releases are logged at warn level since no caller
// is left to observe them.
func (l *Logger) LogRelease(ctx context.Context, op string, id int, automatic bool, err error) {
	switch {
	case err != nil && automatic:
		l.WarnContext(ctx, "automatic release failed",
			"op", op,
			"id", id,
			"error", err,
		)
	case err != nil:
		l.DebugContext(ctx, "release failed",
			"op", op,
			"id", id,
			"error", err,
		)
	case automatic:
		l.DebugContext(ctx, "handle released by cleanup",
			"op", op,
			"id", id,
		)
	}
}

// LogNegotiation logs the outcome of a buffer negotiation.
func (l *Logger) LogNegotiation(ctx context.Context, op string, size, attempts int, err error) {
	if err != nil {
		l.DebugContext(ctx, "buffer negotiation failed",
			"op", op,
			"size", size,
			"attempts", attempts,
			"error", err,
		)
	} else if attempts > 1 {
		l.DebugContext(ctx, "buffer negotiated",
			"op", op,
			"size", size,
			"attempts", attempts,
		)
	}
}
