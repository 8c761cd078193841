package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	Data       any     `json:"data"`
	Error      *string `json:"error"`
	Status     string  `json:"status"`
	StatusCode int     `json:"statusCode"`
}

// SuccessEnvelope wraps data in a success envelope.
func SuccessEnvelope(code int, data any) Envelope {
	return Envelope{Status: StatusSuccess, StatusCode: code, Data: data}
}

// ErrorEnvelope builds an error envelope carrying message.
func ErrorEnvelope(code int, message string) Envelope {
	return Envelope{Status: StatusError, StatusCode: code, Error: &message}
}

// EnvelopeErrorHandler renders errors as error envelopes. HTTPErrors keep
// their code and message; anything else is logged at error level and answered
// with a generic 500, or 503 when the request deadline was exceeded.
func EnvelopeErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	switch {
	case httpErr == nil && errors.Is(err, context.DeadlineExceeded):
		c.LogError("request timed out", slog.Any("error", err))
		httpErr = ErrServiceUnavailable("Request timed out", WithError(err))
	case httpErr == nil:
		c.LogError("request failed", slog.Any("error", err))
		httpErr = ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
	case httpErr.Err != nil:
		c.LogWarn("request rejected",
			slog.Int("status", httpErr.Code),
			slog.String("message", httpErr.Message),
			slog.Any("error", httpErr.Err),
		)
	}

	return c.JSON(httpErr.Code, ErrorEnvelope(httpErr.Code, httpErr.Message))
}
