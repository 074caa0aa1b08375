package server

import (
	"fmt"
	"net"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/brunodoc/bruno-doc/internal/api"
	"github.com/brunodoc/bruno-doc/internal/nilcheck"
)

// Dependencies contains the required external dependencies for the preview server.
// NewDependencies should be used to create instances of Dependencies.
type Dependencies struct {
	// Addr specifies the network address to bind (e.g., "localhost:8085").
	Addr string

	// Renderer assembles the documentation for each request.
	Renderer api.Renderer

	// Logger for server operations.
	Logger hclog.Logger
}

// NewDependencies creates and validates Dependencies.
func NewDependencies(logger hclog.Logger, renderer api.Renderer, addr string) (Dependencies, error) {
	deps := Dependencies{
		Addr:     addr,
		Renderer: renderer,
		Logger:   logger,
	}

	if err := deps.Validate(); err != nil {
		return Dependencies{}, err
	}

	return deps, nil
}

// Validate ensures all required dependencies are provided and valid.
func (d Dependencies) Validate() error {
	if err := IsValidAddr(d.Addr); err != nil {
		return fmt.Errorf("invalid server address '%s': %w", d.Addr, err)
	}
	if nilcheck.IsNil(d.Renderer) {
		return fmt.Errorf("renderer cannot be nil")
	}
	if nilcheck.IsNil(d.Logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	return nil
}

// IsValidAddr returns an error if the address is not a valid "host:port" string.
func IsValidAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid address format: %w", err)
	}

	if port == "" {
		return fmt.Errorf("address missing port")
	}

	if _, err := strconv.Atoi(port); err != nil {
		if _, err := net.LookupPort("tcp", port); err != nil {
			return fmt.Errorf("invalid address port: %s", port)
		}
	}

	return nil
}
