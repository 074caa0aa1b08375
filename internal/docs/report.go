package docs

import (
	"github.com/brunodoc/bruno-doc/internal/bru"
)

// FileReport describes how one .bru file was handled.
type FileReport struct {
	// Path is the absolute path of the .bru file.
	Path string `json:"path" yaml:"path"`

	// Name is the endpoint name declared in the file's meta section.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Title is the first markdown heading of the content the file contributed.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	Status bru.Status `json:"status" yaml:"status"`
}

// Report summarises a documentation run.
type Report struct {
	Source      string       `json:"source" yaml:"source"`
	Destination string       `json:"destination" yaml:"destination"`
	DryRun      bool         `json:"dryRun" yaml:"dry_run"`
	Written     bool         `json:"written" yaml:"written"`
	Files       []FileReport `json:"files" yaml:"files"`
}

// Count returns the number of files with the given status.
func (r *Report) Count(status bru.Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Contributed returns the number of files that added content to the document.
func (r *Report) Contributed() int {
	return r.Count(bru.StatusDocumented) + r.Count(bru.StatusPlaceholder)
}
