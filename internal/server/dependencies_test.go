package server

import (
	"context"
	"io"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/docs"
)

// staticRenderer implements the renderer with a value receiver.
type staticRenderer struct{}

func (staticRenderer) Render(_ context.Context, w io.Writer) (*docs.Report, error) {
	_, err := io.WriteString(w, "# API\n")
	return &docs.Report{}, err
}

func TestDependencies_Validate(t *testing.T) {
	t.Parallel()

	var nilRenderer *fakeRenderer

	tests := []struct {
		name    string
		deps    Dependencies
		wantErr string
	}{
		{
			name: "valid dependencies",
			deps: Dependencies{Addr: "localhost:8085", Renderer: &fakeRenderer{}, Logger: hclog.NewNullLogger()},
		},
		{
			name: "value renderer",
			deps: Dependencies{Addr: "localhost:8085", Renderer: staticRenderer{}, Logger: hclog.NewNullLogger()},
		},
		{
			name:    "invalid address",
			deps:    Dependencies{Addr: "localhost", Renderer: &fakeRenderer{}, Logger: hclog.NewNullLogger()},
			wantErr: "invalid server address 'localhost'",
		},
		{
			name:    "nil renderer",
			deps:    Dependencies{Addr: "localhost:8085", Logger: hclog.NewNullLogger()},
			wantErr: "renderer cannot be nil",
		},
		{
			name:    "typed nil renderer",
			deps:    Dependencies{Addr: "localhost:8085", Renderer: nilRenderer, Logger: hclog.NewNullLogger()},
			wantErr: "renderer cannot be nil",
		},
		{
			name:    "nil logger",
			deps:    Dependencies{Addr: "localhost:8085", Renderer: &fakeRenderer{}},
			wantErr: "logger cannot be nil",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var err error
			require.NotPanics(t, func() { err = tc.deps.Validate() })
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
