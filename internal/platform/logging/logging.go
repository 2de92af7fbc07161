// Package logging builds the slog loggers used by the store server and
// todoctl, and carries a request-scoped logger through context.
//
// The server logs JSON to stderr; todoctl logs text to stderr so stdout stays
// free for command output:
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//
// Middleware enriches the context logger as a request is resolved, and
// handlers and services pick it up again:
//
//	ctx = logging.With(ctx, logging.Caller(caller.String()))
//	logging.FromContext(ctx).WarnContext(ctx, "transition failed",
//	    slog.String(logging.KeyOperation, "Remove"),
//	    slog.Int64("id", t.ID),
//	    slog.Any("error", err),
//	)
//
// Every logger returned by New masks credentials, see redact_handler.go.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Attribute keys shared by request-scoped log lines.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyCaller        = "caller"
	KeyOperation     = "operation"
)

type contextKey struct{}

// New creates a logger writing to w.
//
// level accepts anything slog.Level.UnmarshalText does ("debug", "WARN",
// "info+2"); anything else means info. Debug loggers add source locations.
// format "text" selects slog.NewTextHandler and any other value JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Caller is the attribute naming the resolved caller identity of a request.
func Caller(id string) slog.Attr {
	return slog.String(KeyCaller, id)
}

// With stores a child of ctx's logger carrying args and returns the new
// context.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
