package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/bru"
	"github.com/brunodoc/bruno-doc/internal/docs"
)

// fakeRenderer writes a fixed document and report.
type fakeRenderer struct {
	document string
	report   *docs.Report
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, w io.Writer) (*docs.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := io.WriteString(w, f.document); err != nil {
		return nil, err
	}
	return f.report, nil
}

func testReport() *docs.Report {
	return &docs.Report{
		Source: "/project/Collections",
		Files: []docs.FileReport{
			{Path: "/project/Collections/a.bru", Name: "A", Title: "Get A", Status: bru.StatusDocumented},
			{Path: "/project/Collections/collections.bru", Status: bru.StatusExcluded},
			{Path: "/project/Collections/b.bru", Name: "B", Title: "B", Status: bru.StatusPlaceholder},
		},
	}
}

func TestRegisterRoutes_Validation(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)

	_, err := RegisterRoutes(nil, &fakeRenderer{})
	require.EqualError(t, err, "router cannot be nil")

	var renderer *fakeRenderer
	_, err = RegisterRoutes(api, renderer)
	require.EqualError(t, err, "renderer cannot be nil")

	prefix, err := RegisterRoutes(api, &fakeRenderer{report: &docs.Report{}})
	require.NoError(t, err)
	require.Equal(t, "/api/v1", prefix)
}

// staticRenderer implements Renderer with a value receiver.
type staticRenderer struct{}

func (staticRenderer) Render(_ context.Context, w io.Writer) (*docs.Report, error) {
	_, err := io.WriteString(w, "# Static\n")
	return &docs.Report{}, err
}

func TestRegisterRoutes_ValueRenderer(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)

	require.NotPanics(t, func() {
		_, err := RegisterRoutes(api, staticRenderer{})
		require.NoError(t, err)
	})

	resp := api.Get("/api/v1/document")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "# Static\n", resp.Body.String())
}

func TestDocumentRoute(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	_, err := RegisterRoutes(api, &fakeRenderer{document: "# API\n\n## A\n", report: testReport()})
	require.NoError(t, err)

	resp := api.Get("/api/v1/document")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, ContentTypeMarkdown, resp.Header().Get("Content-Type"))
	require.Equal(t, "# API\n\n## A\n", resp.Body.String())
}

func TestEndpointsRoute(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	_, err := RegisterRoutes(api, &fakeRenderer{document: "ignored", report: testReport()})
	require.NoError(t, err)

	resp := api.Get("/api/v1/endpoints")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Source      string     `json:"source"`
		Contributed int        `json:"contributed"`
		Endpoints   []Endpoint `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	require.Equal(t, "/project/Collections", body.Source)
	require.Equal(t, 2, body.Contributed)
	require.Equal(t, []Endpoint{
		{Path: "/project/Collections/a.bru", Name: "A", Title: "Get A", Status: bru.StatusDocumented},
		{Path: "/project/Collections/collections.bru", Status: bru.StatusExcluded},
		{Path: "/project/Collections/b.bru", Name: "B", Title: "B", Status: bru.StatusPlaceholder},
	}, body.Endpoints)
}

func TestEndpointsRoute_Empty(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	_, err := RegisterRoutes(api, &fakeRenderer{report: &docs.Report{Source: "/empty", Files: []docs.FileReport{}}})
	require.NoError(t, err)

	resp := api.Get("/api/v1/endpoints")
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"source":"/empty","contributed":0,"endpoints":[]}`, stripSchema(t, resp.Body.Bytes()))
}

func TestRoutes_RendererError(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	_, err := RegisterRoutes(api, &fakeRenderer{err: errors.New("boom")})
	require.NoError(t, err)

	require.Equal(t, http.StatusInternalServerError, api.Get("/api/v1/document").Code)
	require.Equal(t, http.StatusInternalServerError, api.Get("/api/v1/endpoints").Code)
}

// stripSchema removes the $schema link huma adds to JSON object responses.
func stripSchema(t *testing.T, data []byte) string {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	delete(m, "$schema")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
