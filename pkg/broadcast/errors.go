package broadcast

import "errors"

var (
	ErrInvalidAudience  = errors.New("audience must be one of: newsletter, event")
	ErrMissingEventID   = errors.New("eventId must be a positive integer for event audience")
	ErrRenderFailed     = errors.New("broadcast: failed to render email")
	ErrDispatchFailed   = errors.New("broadcast: failed to dispatch emails")
	ErrBatchUnsupported = errors.New("broadcast: mail provider does not support batch sending")
	ErrInvalidMode      = errors.New("broadcast: invalid dispatch mode")
)
