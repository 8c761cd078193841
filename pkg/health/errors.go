package health

import "errors"

var (
	// ErrCheckFailed is returned by Response.Err when one or more checks failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for a check that exceeded the timeout.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrNotConfigured is reported by Configured for missing settings.
	ErrNotConfigured = errors.New("health: not configured")
)
