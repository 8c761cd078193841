// Package mailcast provides a small HTTP framework for the broadcast email
// endpoint and re-exports its public API.
//
// An App is built from options and is immutable afterwards. Handlers declare
// their routes, middleware wraps them, and every response (success or error)
// is written as the JSON envelope
//
//	{"status": "success", "statusCode": 200, "data": ..., "error": null}
//
// # Quick Start
//
//	app := mailcast.New(
//	    mailcast.WithLogger(log),
//	    mailcast.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.APIKey(cfg.APIKey),
//	    ),
//	    mailcast.WithHealthChecks(),
//	    mailcast.WithHandlers(handlers.NewBroadcast(svc, reg)),
//	)
//
//	if err := app.Run(":8080", mailcast.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	func (h *Broadcast) Routes(r mailcast.Router) {
//	    r.POST("/", h.send)
//	}
//
// Handler functions return an error. An [HTTPError] keeps its status and
// message; any other error becomes a 500 envelope and is logged.
//
// # Graceful Shutdown
//
// Run blocks until SIGINT or SIGTERM, then drains in-flight requests and runs
// shutdown hooks in registration order:
//
//	app.Run(addr, mailcast.ShutdownHook(logger.Flush))
//
// # Health Checks
//
// [WithHealthChecks] mounts /health/live and /health/ready. Readiness runs
// every check added with [WithReadinessCheck] concurrently.
package mailcast
