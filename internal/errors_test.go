package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("template lookup failed")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "direct",
			err:      internal.ErrBadRequest("Template is not configured"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Template is not configured",
		},
		{
			name:     "wrapped",
			err:      fmt.Errorf("handler: %w", internal.ErrUnauthorized("Nice try 👍")),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Nice try 👍",
		},
		{
			name:     "double wrapped",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", internal.ErrInternal("Failed to schedule an email.", internal.WithError(cause)))),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to schedule an email.",
		},
		{name: "plain error", err: cause},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := internal.AsHTTPError(tt.err)
			if tt.wantCode == 0 {
				require.Nil(t, got)
				require.False(t, internal.IsHTTPError(tt.err))
				return
			}
			require.NotNil(t, got)
			require.True(t, internal.IsHTTPError(tt.err))
			require.Equal(t, tt.wantCode, got.StatusCode())
			require.Equal(t, tt.wantMsg, got.Error())
			require.Equal(t, http.StatusText(tt.wantCode), got.StatusText())
		})
	}
}

func TestHTTPError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("provider down")
	err := internal.ErrInternal("Failed to schedule an email.",
		internal.WithError(cause),
		internal.WithRequestID("req-1"),
	)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "req-1", err.RequestID)
	require.Equal(t, http.StatusMethodNotAllowed, internal.ErrMethodNotAllowed("x").Code)
	require.Equal(t, http.StatusNotFound, internal.ErrNotFound("x").Code)
	require.Equal(t, http.StatusServiceUnavailable, internal.ErrServiceUnavailable("x").Code)
}
