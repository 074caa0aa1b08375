package bru

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brunodoc/bruno-doc/internal/errors"
)

var (
	// Sections are matched up to the first closing brace: nested braces are not supported
	// and the first occurrence of a marker wins.
	docsPattern = regexp.MustCompile(`docs \{([^}]*)\}`)
	metaPattern = regexp.MustCompile(`meta \{([^}]*)\}`)
	namePattern = regexp.MustCompile(`(?im)^[ \t]*name:[ \t]*(.*)$`)
)

// placeholderFormat is used for files which declare a name but carry no docs section.
const placeholderFormat = "## %s\n\nThis endpoint is not documented.\n\n"

// Extraction is the outcome of reading one .bru file.
type Extraction struct {
	// Name is the endpoint name declared in the meta section, when present.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Status describes how the file contributes to the document.
	Status Status `json:"status" yaml:"status"`

	// Content is the text written to the document; empty unless Status.Contributes().
	Content string `json:"-" yaml:"-"`
}

// Extract determines the documentation contributed by the content of a .bru file.
//
// A docs section is returned verbatim. Without one, a placeholder naming the endpoint
// is generated from the meta section. Files lacking a meta section, or whose meta section
// declares no name, contribute nothing: the returned error wraps errors.ErrMissingMetadata
// or errors.ErrMissingName and the Extraction records the matching Status.
func Extract(content string) (Extraction, error) {
	name, hasMeta := endpointName(content)

	if docs := docsPattern.FindStringSubmatch(content); docs != nil {
		return Extraction{
			Name:    name,
			Status:  StatusDocumented,
			Content: docs[1],
		}, nil
	}

	if !hasMeta {
		return Extraction{Status: StatusMissingMetadata}, fmt.Errorf("%w; skipping", errors.ErrMissingMetadata)
	}

	if name == "" {
		return Extraction{Status: StatusMissingName}, fmt.Errorf("%w; skipping", errors.ErrMissingName)
	}

	return Extraction{
		Name:    name,
		Status:  StatusPlaceholder,
		Content: Placeholder(name),
	}, nil
}

// Placeholder returns the markdown generated for an undocumented endpoint.
func Placeholder(name string) string {
	return fmt.Sprintf(placeholderFormat, name)
}

// endpointName returns the trimmed name declared in the meta section, and whether a meta section exists.
func endpointName(content string) (string, bool) {
	meta := metaPattern.FindStringSubmatch(content)
	if meta == nil {
		return "", false
	}

	m := namePattern.FindStringSubmatch(meta[1])
	if m == nil {
		return "", true
	}

	return strings.TrimSpace(m[1]), true
}
