package logger

import "log/slog"

// Config holds logger configuration.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"` // json or text
	Sentry SentryConfig
}
