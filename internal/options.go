package internal

import "log/slog"

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided and runs before routing, so it
// also sees requests that end in a 404 or 405.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler replaces the envelope error handler.
// Called when a handler or middleware returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.notFoundHandler = h
		}
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		if h != nil {
			a.methodNotAllowedHandler = h
		}
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): always returns OK while the process is running.
// Readiness (/health/ready): runs all configured checks.
//
// Example:
//
//	mailcast.WithHealthChecks(
//	    mailcast.WithReadinessCheck("mailer", mailerReady),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  DefaultLivenessPath,
			readinessPath: DefaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
