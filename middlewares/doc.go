// Package middlewares provides HTTP middleware for mailcast.
//
// # API key
//
// APIKey rejects every request whose bearer token does not match the
// configured key. It runs before routing, so unknown paths and unsupported
// methods are rejected too. Health probes are exempted with WithAuthSkipPaths:
//
//	middlewares.APIKey(cfg.APIKey,
//	    middlewares.WithAuthSkipPaths("/health/live", "/health/ready"),
//	)
//
// # Request ID
//
// RequestID assigns an ID to each request, reusing an incoming X-Request-ID
// (or X-Correlation-ID) header when present and generating a UUID otherwise.
// RequestIDExtractor adds it to every log record as request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover converts panics into a *PanicError, which the error handler renders
// as a 500 envelope.
//
// # Timeout
//
// Timeout attaches a deadline to the request context. Work that honours the
// context stops when it expires; an error caused by the expired deadline
// becomes a *TimeoutError.
//
//	app := mailcast.New(
//	    mailcast.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.APIKey(cfg.APIKey, middlewares.WithAuthSkipPaths(health...)),
//	        middlewares.Timeout(cfg.RequestTimeout),
//	    ),
//	)
package middlewares
