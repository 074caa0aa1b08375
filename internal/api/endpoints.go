package api

import (
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/brunodoc/bruno-doc/internal/bru"
	"github.com/brunodoc/bruno-doc/internal/docs"
)

// DomainFileReport is a wrapper that allows receivers to be declared in the API package that deal with domain types.
type DomainFileReport docs.FileReport

// Endpoint describes how a single .bru file contributes to the documentation.
type Endpoint struct {
	Path   string     `doc:"Absolute path of the .bru file"                  json:"path"`
	Name   string     `doc:"Endpoint name from the meta section"             json:"name,omitempty"`
	Title  string     `doc:"First heading of the contributed documentation" json:"title,omitempty"`
	Status bru.Status `doc:"How the file contributes to the documentation"   json:"status"`
}

// EndpointsResponse is the response for GET /endpoints.
type EndpointsResponse struct {
	Body struct {
		Source      string     `doc:"Resolved source folder"                      json:"source"`
		Contributed int        `doc:"Number of files contributing documentation" json:"contributed"`
		Endpoints   []Endpoint `doc:"Every .bru file in enumeration order"        json:"endpoints"`
	}
}

// ToAPIType can be used to convert a wrapped domain type to an API-safe type.
func (d DomainFileReport) ToAPIType() Endpoint {
	return Endpoint{
		Path:   d.Path,
		Name:   d.Name,
		Title:  d.Title,
		Status: d.Status,
	}
}

// RegisterEndpointRoutes sets up the route listing the .bru files of the collection.
func RegisterEndpointRoutes(routerAPI huma.API, renderer Renderer, path string) {
	tags := []string{"Documentation"}

	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "listEndpoints",
			Method:      http.MethodGet,
			Path:        path,
			Summary:     "List the .bru files and how each is documented",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*EndpointsResponse, error) {
			return handleEndpoints(ctx, renderer)
		},
	)
}

// handleEndpoints runs the pipeline without keeping the document and reports each file.
func handleEndpoints(ctx context.Context, renderer Renderer) (*EndpointsResponse, error) {
	report, err := renderer.Render(ctx, io.Discard)
	if err != nil {
		return nil, err
	}

	endpoints := make([]Endpoint, 0, len(report.Files))
	for _, f := range report.Files {
		endpoints = append(endpoints, DomainFileReport(f).ToAPIType())
	}

	resp := &EndpointsResponse{}
	resp.Body.Source = report.Source
	resp.Body.Contributed = report.Contributed()
	resp.Body.Endpoints = endpoints

	return resp, nil
}
