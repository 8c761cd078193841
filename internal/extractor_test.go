package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/internal"
)

// captureHandler registers GET / and GET /{id} routes that call fn.
type captureHandler struct {
	fn func(c internal.Context)
}

func (h *captureHandler) Routes(r internal.Router) {
	handle := func(c internal.Context) error {
		h.fn(c)
		return c.NoContent(http.StatusNoContent)
	}
	r.GET("/", handle)
	r.GET("/{id}", handle)
}

// requestVia serves req through an App whose only handler calls fn.
func requestVia(t *testing.T, req *http.Request, fn func(c internal.Context)) {
	t.Helper()

	called := false
	app := internal.New(internal.WithHandlers(&captureHandler{fn: func(c internal.Context) {
		called = true
		fn(c)
	}}))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	require.True(t, called, "handler was not reached: %d %s", w.Code, w.Body.String())
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     internal.Extractor
		target  string
		headers map[string]string
		want    string
		wantOK  bool
	}{
		{
			name:   "no sources",
			ext:    internal.NewExtractor(),
			target: "/",
		},
		{
			name:    "first source wins",
			ext:     internal.NewExtractor(internal.FromHeader("X-First"), internal.FromHeader("X-Second")),
			target:  "/",
			headers: map[string]string{"X-First": "one", "X-Second": "two"},
			want:    "one",
			wantOK:  true,
		},
		{
			name:    "falls through to query",
			ext:     internal.NewExtractor(internal.FromHeader("X-Token"), internal.FromQuery("token")),
			target:  "/?token=q",
			headers: map[string]string{},
			want:    "q",
			wantOK:  true,
		},
		{
			name:   "url param",
			ext:    internal.NewExtractor(internal.FromParam("id")),
			target: "/42",
			want:   "42",
			wantOK: true,
		},
		{
			name:    "bearer token",
			ext:     internal.NewExtractor(internal.FromBearerToken()),
			target:  "/",
			headers: map[string]string{"Authorization": "Bearer secret"},
			want:    "secret",
			wantOK:  true,
		},
		{
			name:    "bearer prefix is case-insensitive",
			ext:     internal.NewExtractor(internal.FromBearerToken()),
			target:  "/",
			headers: map[string]string{"Authorization": "bearer secret"},
			want:    "secret",
			wantOK:  true,
		},
		{
			name:    "basic auth is not a bearer token",
			ext:     internal.NewExtractor(internal.FromBearerToken()),
			target:  "/",
			headers: map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
		},
		{
			name:    "empty bearer token",
			ext:     internal.NewExtractor(internal.FromBearerToken()),
			target:  "/",
			headers: map[string]string{"Authorization": "Bearer "},
		},
		{
			name:    "short header",
			ext:     internal.NewExtractor(internal.FromBearerToken()),
			target:  "/",
			headers: map[string]string{"Authorization": "Bear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			requestVia(t, req, func(c internal.Context) {
				got, ok := tt.ext.Extract(c)
				require.Equal(t, tt.wantOK, ok)
				require.Equal(t, tt.want, got)
			})
		})
	}
}
