// Package printer renders command results as human readable text.
package printer

import (
	"fmt"
	"io"

	"github.com/brunodoc/bruno-doc/internal/cmd/output"
	"github.com/brunodoc/bruno-doc/internal/docs"
)

var _ output.Printer[docs.FileReport] = (*EndpointPrinter)(nil)

// EndpointPrinter prints one line per .bru file followed by its path.
type EndpointPrinter struct {
	headerFunc output.WriteFunc[docs.FileReport]
	footerFunc output.WriteFunc[docs.FileReport]
}

// DefaultEndpointHeader writes the number of files found.
func DefaultEndpointHeader(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "Found %d .bru file(s)\n\n", count)
}

func (p *EndpointPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *EndpointPrinter) SetHeader(fn output.WriteFunc[docs.FileReport]) {
	p.headerFunc = fn
}

func (p *EndpointPrinter) Item(w io.Writer, file docs.FileReport) error {
	label := file.Title
	if label == "" {
		label = file.Name
	}
	if label == "" {
		label = "-"
	}

	if _, err := fmt.Fprintf(w, "  %-17s %s\n", file.Status, label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %-17s %s\n", "", file.Path); err != nil {
		return err
	}

	return nil
}

func (p *EndpointPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *EndpointPrinter) SetFooter(fn output.WriteFunc[docs.FileReport]) {
	p.footerFunc = fn
}
