// Package ctxlog carries the run's slog.Logger through context.Context so
// that every stage (parsing, resolution, evaluation) logs through the same
// configured handler.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

// key is unexported to prevent collisions with context keys of other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. If no logger is found, it
// returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Discard returns a context carrying a logger that drops every record.
// Tests and library callers that do not care about logs use it.
func Discard(ctx context.Context) context.Context {
	return WithLogger(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
