package server

import (
	"fmt"
	"net/http"
	"time"
)

// Options contains optional configuration for the preview server.
// NewOptions should be used to create instances of Options.
type Options struct {
	// CORS configuration for cross-origin requests.
	CORS CORSConfig

	// ShutdownTimeout specifies how long to wait for graceful shutdown.
	ShutdownTimeout time.Duration
}

// CORSConfig defines Cross-Origin Resource Sharing settings for the preview server.
type CORSConfig struct {
	// Enabled determines whether CORS headers are added to responses.
	Enabled bool

	// AllowedHeaders specifies which headers the client can include in requests.
	AllowedHeaders []string

	// AllowMethods specifies which HTTP methods are permitted.
	AllowMethods []string

	// AllowOrigins specifies which origins can access the API.
	// Use ["*"] to allow all origins.
	AllowOrigins []string

	// MaxAge specifies how long browsers can cache preflight responses.
	MaxAge time.Duration
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
func NewOptions(opts ...Option) (Options, error) {
	options := Options{
		CORS: CORSConfig{
			Enabled:        false,
			AllowOrigins:   nil,
			AllowMethods:   DefaultCORSAllowMethods(),
			AllowedHeaders: DefaultCORSAllowHeaders(),
			MaxAge:         DefaultCORSMaxAge(),
		},
		ShutdownTimeout: DefaultShutdownTimeout(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// WithCORSAllowOrigins enables CORS for the given origins.
// An empty list disables CORS.
func WithCORSAllowOrigins(origins []string) Option {
	return func(o *Options) error {
		o.CORS.AllowOrigins = origins
		o.CORS.Enabled = len(origins) > 0
		return nil
	}
}

// WithCORSMaxAge sets how long browsers can cache CORS preflight responses.
func WithCORSMaxAge(maxAge time.Duration) Option {
	return func(o *Options) error {
		if maxAge < 0 {
			return fmt.Errorf("CORS max age cannot be negative, got %v", maxAge)
		}
		o.CORS.MaxAge = maxAge
		return nil
	}
}

// WithShutdownTimeout configures how long to wait for graceful shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		if timeout <= 0 {
			return fmt.Errorf("shutdown timeout must be positive, got %v", timeout)
		}
		o.ShutdownTimeout = timeout
		return nil
	}
}

// DefaultCORSAllowHeaders returns standard headers required for API interaction.
func DefaultCORSAllowHeaders() []string {
	return []string{
		"Accept",
		"Accept-Language",
		"Content-Language",
		"Content-Type",
	}
}

// DefaultCORSAllowMethods returns the HTTP methods the read-only preview API uses.
func DefaultCORSAllowMethods() []string {
	return []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodOptions,
	}
}

// DefaultCORSMaxAge returns the default CORS max age duration.
func DefaultCORSMaxAge() time.Duration {
	return 5 * time.Minute
}

// DefaultShutdownTimeout is the default time allowed for graceful shutdown.
func DefaultShutdownTimeout() time.Duration {
	return 5 * time.Second
}
