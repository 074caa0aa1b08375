// Package api defines the HTTP routes of the documentation preview server.
package api

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/nilcheck"
)

// APIVersion is the version used in the OpenAPI spec and URL paths.
const APIVersion = "v1"

// Renderer assembles the documentation on demand.
type Renderer interface {
	// Render writes the assembled markdown to w and reports how each .bru file was handled.
	Render(ctx context.Context, w io.Writer) (*docs.Report, error)
}

// RegisterRoutes registers all API routes on the provided Huma router.
// Returns the API path prefix (e.g., "/api/v1") under which the routes are created.
func RegisterRoutes(router huma.API, renderer Renderer) (string, error) {
	if nilcheck.IsNil(router) {
		return "", fmt.Errorf("router cannot be nil")
	}
	if nilcheck.IsNil(renderer) {
		return "", fmt.Errorf("renderer cannot be nil")
	}

	// Safe way to ensure /api/{version}.
	apiPathPrefix, err := url.JoinPath("/api", APIVersion)
	if err != nil {
		return "", fmt.Errorf("failed to construct API path prefix: %w", err)
	}

	versionedGroup := huma.NewGroup(router, apiPathPrefix)
	RegisterDocumentRoutes(versionedGroup, renderer, "/document")
	RegisterEndpointRoutes(versionedGroup, renderer, "/endpoints")

	return apiPathPrefix, nil
}
