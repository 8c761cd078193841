package middlewares

import (
	"crypto/subtle"
	"slices"

	"github.com/nn1-dev/mailcast/internal"
)

// DefaultAuthMessage is the error message of rejected requests.
const DefaultAuthMessage = "Nice try 👍"

// AuthConfig configures the API key middleware.
type AuthConfig struct {
	Extractor internal.Extractor
	Message   string
	SkipPaths []string
}

// AuthOption configures AuthConfig.
type AuthOption func(*AuthConfig)

// WithAuthExtractor sets a custom token extractor chain.
func WithAuthExtractor(ext internal.Extractor) AuthOption {
	return func(cfg *AuthConfig) {
		cfg.Extractor = ext
	}
}

// WithAuthMessage sets the message returned with 401 responses.
func WithAuthMessage(msg string) AuthOption {
	return func(cfg *AuthConfig) {
		if msg != "" {
			cfg.Message = msg
		}
	}
}

// WithAuthSkipPaths exempts exact request paths from authentication.
func WithAuthSkipPaths(paths ...string) AuthOption {
	return func(cfg *AuthConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// APIKey returns middleware that requires the request's bearer token to equal
// key. An empty key rejects every request.
func APIKey(key string, opts ...AuthOption) internal.Middleware {
	cfg := &AuthConfig{
		Extractor: internal.NewExtractor(internal.FromBearerToken()),
		Message:   DefaultAuthMessage,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	want := []byte(key)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if slices.Contains(cfg.SkipPaths, c.Request().URL.Path) {
				return next(c)
			}

			token, ok := cfg.Extractor.Extract(c)
			if !ok || len(want) == 0 || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
				return internal.ErrUnauthorized(cfg.Message)
			}

			return next(c)
		}
	}
}
