package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to stdout and, when cfg.Sentry.DSN is set, to Sentry.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newLogger(os.Stdout, cfg, extractors...)
}

func newLogger(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	handler := stdoutHandler(w, cfg)
	if sentryHandler := newSentryHandler(cfg.Sentry, handler); sentryHandler != nil {
		handler = newMultiHandler(handler, sentryHandler)
	}
	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

func stdoutHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
