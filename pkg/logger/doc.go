// Package logger builds the service's structured logger.
//
// Logs are JSON on stdout. When a Sentry DSN is configured, the same records
// are also forwarded to Sentry: ERROR records become Sentry issues, WARN and
// ERROR records are kept as searchable Sentry logs. This is the service's
// observability sink; code reports a failure simply by logging it at ERROR.
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	log.ErrorContext(ctx, "newsletter fetch failed", slog.Any("error", err))
//
// Context extractors add request-scoped attributes (such as request_id) to
// every record at the moment it is written.
//
// Call Flush before the process exits so buffered Sentry events are delivered.
package logger
