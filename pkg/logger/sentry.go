package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// TracesSampleRate is forwarded to the SDK; 1.0 samples every transaction.
	TracesSampleRate float64 `env:"SENTRY_TRACES_SAMPLE_RATE" envDefault:"1.0"`
	// WarningsAsLogs keeps WARN records as Sentry logs in addition to ERROR.
	WarningsAsLogs bool `env:"SENTRY_WARNINGS_AS_LOGS" envDefault:"true"`
}

// newSentryHandler initializes the Sentry SDK and returns a handler forwarding
// records to it. Returns nil when the DSN is empty or initialization fails, in
// which case logging continues on stdout only.
func newSentryHandler(cfg SentryConfig, fallback slog.Handler) slog.Handler {
	if cfg.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		TracesSampleRate: cfg.TracesSampleRate,
		EnableLogs:       true,
	})
	if err != nil {
		slog.New(fallback).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return nil
	}

	logLevel := []slog.Level{slog.LevelError}
	if cfg.WarningsAsLogs {
		logLevel = []slog.Level{slog.LevelWarn, slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())
}

// Flush waits for buffered Sentry events to be delivered, bounded by ctx.
// It is a no-op when Sentry was never initialized.
func Flush(ctx context.Context) error {
	timeout := 2 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout > 0 {
		sentry.Flush(timeout)
	}
	return nil
}
