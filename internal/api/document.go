package api

import (
	"bytes"
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ContentTypeMarkdown is the media type of the assembled documentation.
const ContentTypeMarkdown = "text/markdown; charset=utf-8"

// DocumentResponse is the response for GET /document.
type DocumentResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RegisterDocumentRoutes sets up the route serving the assembled markdown document.
func RegisterDocumentRoutes(routerAPI huma.API, renderer Renderer, path string) {
	tags := []string{"Documentation"}

	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "getDocument",
			Method:      http.MethodGet,
			Path:        path,
			Summary:     "Assemble the API documentation",
			Description: "Assembles the documentation in memory; nothing is written to disk.",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*DocumentResponse, error) {
			return handleDocument(ctx, renderer)
		},
	)
}

// handleDocument renders the documentation into memory.
func handleDocument(ctx context.Context, renderer Renderer) (*DocumentResponse, error) {
	var buf bytes.Buffer
	if _, err := renderer.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &DocumentResponse{
		ContentType: ContentTypeMarkdown,
		Body:        buf.Bytes(),
	}, nil
}
