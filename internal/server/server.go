// Package server runs the HTTP server that previews the assembled documentation.
package server

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/brunodoc/bruno-doc/internal/api"
	"github.com/brunodoc/bruno-doc/internal/cmd"
	"github.com/brunodoc/bruno-doc/internal/errors"
)

// Server serves the documentation preview API.
// NewServer should be used to create instances of Server.
type Server struct {
	logger          hclog.Logger
	renderer        api.Renderer
	addr            string
	cors            CORSConfig
	shutdownTimeout time.Duration
}

// NewServer creates a new preview server with the provided dependencies and options.
func NewServer(deps Dependencies, opt ...Option) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies for preview server: %w", err)
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid preview server options: %w", err)
	}

	return &Server{
		logger:          deps.Logger.Named("server"),
		renderer:        deps.Renderer,
		addr:            deps.Addr,
		cors:            opts.CORS,
		shutdownTimeout: opts.ShutdownTimeout,
	}, nil
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.addr
}

// Handler builds the HTTP handler serving the preview API.
func (s *Server) Handler() (http.Handler, error) {
	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)

	if s.cors.Enabled {
		s.applyCORS(mux)
	}

	config := huma.DefaultConfig("bruno-doc preview", cmd.Version())
	router := humachi.New(mux, config)

	huma.NewErrorWithContext = errorHandler(s.logger)

	prefix, err := api.RegisterRoutes(router, s.renderer)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Registered API routes", "prefix", prefix)

	return mux, nil
}

// Start serves the API and blocks until the context is canceled or the server fails.
// A canceled context shuts the server down gracefully and returns the context's error.
func (s *Server) Start(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting preview server", "address", s.addr)
		if err := srv.ListenAndServe(); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Info("Shutting down preview server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview server shutdown failed: %w", err)
		}
		s.logger.Info("Shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// applyCORS applies CORS middleware to the router based on the configured options.
func (s *Server) applyCORS(mux *chi.Mux) {
	s.logger.Info("Enabling CORS", "origins", s.cors.AllowOrigins)

	corsOptions := cors.Options{
		AllowedOrigins: make([]string, 0, len(s.cors.AllowOrigins)),
		AllowedMethods: s.cors.AllowMethods,
		AllowedHeaders: s.cors.AllowedHeaders,
		MaxAge:         int(s.cors.MaxAge.Seconds()),
	}

	for _, origin := range s.cors.AllowOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			corsOptions.AllowedOrigins = []string{"*"}
			break
		}
		corsOptions.AllowedOrigins = append(corsOptions.AllowedOrigins, origin)
	}

	mux.Use(cors.Handler(corsOptions))
}

// mapError maps application domain errors to appropriate HTTP status codes.
//
// When adding new errors to internal/errors/errors.go that a request can produce,
// add them here so they don't fall through to the status huma suggested.
func mapError(logger hclog.Logger, status int, msg string, errs ...error) huma.StatusError {
	err := stdErrors.Join(errs...)

	switch {
	case stdErrors.Is(err, errors.ErrSourcePathNotFound):
		return huma.Error404NotFound(err.Error())
	case stdErrors.Is(err, errors.ErrDestinationWrite):
		logger.Error("Failed to write documentation", "error", err)
		return huma.Error500InternalServerError("Failed to assemble documentation", err)
	case stdErrors.Is(err, context.Canceled):
		return huma.NewError(http.StatusServiceUnavailable, "Request canceled", err)
	default:
		if status >= http.StatusInternalServerError {
			logger.Error("Unexpected error assembling documentation", "error", err)
		}
		return huma.NewError(status, msg, errs...)
	}
}

// errorHandler wraps error handling for the application when converting to API friendly errors.
func errorHandler(logger hclog.Logger) func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
	return func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		if len(errs) == 0 {
			return huma.NewError(status, msg)
		}
		return mapError(logger, status, msg, errs...)
	}
}
