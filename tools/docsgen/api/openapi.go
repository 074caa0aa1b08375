//go:build docsgen_api
// +build docsgen_api

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/brunodoc/bruno-doc/internal/api"
	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/perms"
)

// stubRenderer satisfies api.Renderer; only the route definitions are needed.
type stubRenderer struct{}

func (*stubRenderer) Render(context.Context, io.Writer) (*docs.Report, error) {
	return &docs.Report{}, nil
}

// main writes the OpenAPI specification of the preview API.
// It assumes it is run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "bruno-doc.docsgen.api",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	outputPath := "./docs/api/openapi.yaml"

	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)

	router := humachi.New(mux, huma.DefaultConfig("bruno-doc preview", api.APIVersion))

	prefix, err := api.RegisterRoutes(router, &stubRenderer{})
	if err != nil {
		logger.Error("failed to register API routes", "error", err)
		os.Exit(1)
	}

	logger.Info("Routes registered", "prefix", prefix)

	yamlBytes, err := router.OpenAPI().YAML()
	if err != nil {
		logger.Error("failed to generate OpenAPI YAML", "error", err)
		os.Exit(1)
	}

	docsDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(docsDir, perms.RegularDir); err != nil {
		logger.Error("failed to create docs directory", "path", docsDir, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, yamlBytes, perms.RegularFile); err != nil {
		logger.Error("failed to write OpenAPI spec", "path", outputPath, "error", err)
		os.Exit(1)
	}

	logger.Info("OpenAPI spec generated", "path", outputPath, "size", fmt.Sprintf("%d bytes", len(yamlBytes)))
}
