package audience

import "errors"

var (
	// ErrUnknownKind is returned when an audience name is not recognized.
	ErrUnknownKind = errors.New("audience: unknown audience")

	// ErrUpstream wraps any failure talking to the newsletter or ticketing service:
	// transport errors, non-2xx statuses and malformed response bodies.
	ErrUpstream = errors.New("audience: upstream request failed")
)
