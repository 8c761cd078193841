// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel and answers 503
// when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": health.Configured(map[string]string{"API_KEY_RESEND": cfg.APIKey}),
//	}))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with Accept: application/json or ?format=json:
//
//	{"status": "unhealthy", "checks": {"mailer": {"status": "unhealthy", "error": "health: not configured: API_KEY_RESEND"}}}
//
// A check that does not return within the timeout (default 5s) is reported
// as failed with [ErrCheckTimeout].
package health
