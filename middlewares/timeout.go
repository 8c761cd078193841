package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nn1-dev/mailcast/internal"
)

// DefaultTimeout is the default request timeout. Broadcasts are paced
// against the mail provider, so the default is generous.
const DefaultTimeout = 5 * time.Minute

// Timeout returns middleware that puts a deadline on the request context.
// The handler runs synchronously and is expected to honour the context.
// When it fails after the deadline passed with an error that is not an
// HTTPError, the error is replaced by a *TimeoutError. Global middleware
// only sees errors from other middleware, so the conversion applies to
// route-level use.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)

			err := next(c)
			if err == nil || !errors.Is(ctx.Err(), context.DeadlineExceeded) || internal.IsHTTPError(err) {
				return err
			}

			c.LogWarn("request timeout", slog.Duration("timeout", timeout), slog.Any("error", err))
			return &TimeoutError{Duration: timeout, Err: err}
		}
	}
}
