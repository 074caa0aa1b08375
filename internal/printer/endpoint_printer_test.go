package printer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/bru"
	"github.com/brunodoc/bruno-doc/internal/docs"
)

func TestEndpointPrinter_Item(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     docs.FileReport
		expected string
	}{
		{
			name: "documented file uses title",
			file: docs.FileReport{
				Path:   "/c/users/get.bru",
				Name:   "Get user",
				Title:  "GET /users/{id}",
				Status: bru.StatusDocumented,
			},
			expected: "  documented        GET /users/{id}\n" +
				"                    /c/users/get.bru\n",
		},
		{
			name: "placeholder without title uses name",
			file: docs.FileReport{
				Path:   "/c/widget.bru",
				Name:   "Widget",
				Status: bru.StatusPlaceholder,
			},
			expected: "  placeholder       Widget\n" +
				"                    /c/widget.bru\n",
		},
		{
			name: "skipped file without name",
			file: docs.FileReport{
				Path:   "/c/broken.bru",
				Status: bru.StatusMissingMetadata,
			},
			expected: "  missing-metadata  -\n" +
				"                    /c/broken.bru\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := &EndpointPrinter{}

			require.NoError(t, p.Item(&buf, tc.file))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestEndpointPrinter_HeaderFooter(t *testing.T) {
	t.Parallel()

	t.Run("default header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &EndpointPrinter{}
		p.SetHeader(DefaultEndpointHeader)

		p.Header(&buf, 3)
		require.Equal(t, "Found 3 .bru file(s)\n\n", buf.String())
	})

	t.Run("custom footer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &EndpointPrinter{}
		p.SetFooter(func(w io.Writer, count int) {
			_, _ = w.Write([]byte("=== FOOTER ===\n"))
		})

		p.Footer(&buf, 1)
		require.Equal(t, "=== FOOTER ===\n", buf.String())
	})

	t.Run("nothing when not set", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &EndpointPrinter{}

		p.Header(&buf, 1)
		p.Footer(&buf, 1)
		require.Empty(t, buf.String())
	})
}
