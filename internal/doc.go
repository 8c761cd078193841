// Package internal provides the HTTP kernel of mailcast.
//
// Import "github.com/nn1-dev/mailcast" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, global middleware, health endpoints and the server lifecycle
//   - Context: request/response access plus JSON helpers; implements context.Context
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: route handler signature; a returned error goes to the ErrorHandler
//   - Middleware: wraps a HandlerFunc
//   - HTTPError: an error carrying the status code and client-facing message
//   - Envelope: the JSON body every response uses
//
// # Responses
//
// Every JSON response uses the same envelope:
//
//	{"status": "success", "statusCode": 200, "data": [...], "error": null}
//	{"status": "error", "statusCode": 400, "data": null, "error": "Template is not configured"}
//
// Handlers return data with c.Success and errors as *HTTPError. EnvelopeErrorHandler
// renders any returned error as an error envelope; errors that are not HTTPErrors
// become a generic 500.
//
// # Application Structure
//
//	app := internal.New(
//	    internal.WithLogger(log),
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("mailer", check)),
//	    internal.WithHandlers(handlers.NewBroadcast(svc)),
//	)
//	err := app.Run(":8080", internal.Logger(log))
//
// Run blocks until SIGINT or SIGTERM, then shuts the server down gracefully and
// runs the registered shutdown hooks.
package internal
