// Package bru reads collections of Bruno request files (.bru) and extracts the
// documentation each file contributes to the generated API document.
package bru

// Extension is the file extension of Bruno request files. Matching is case-sensitive.
const Extension = ".bru"

// Status describes what a single .bru file contributes to the generated document.
type Status string

const (
	// StatusDocumented means the file has a docs section which is used verbatim.
	StatusDocumented Status = "documented"

	// StatusPlaceholder means the file declares a name but has no docs section,
	// so a placeholder is generated.
	StatusPlaceholder Status = "placeholder"

	// StatusExcluded means the file name is in the configured exclude list.
	StatusExcluded Status = "excluded"

	// StatusMissingMetadata means the file has neither a docs nor a meta section.
	StatusMissingMetadata Status = "missing-metadata"

	// StatusMissingName means the meta section does not declare a usable name.
	StatusMissingName Status = "missing-name"
)

// Contributes reports whether a file with this status adds content to the document.
func (s Status) Contributes() bool {
	return s == StatusDocumented || s == StatusPlaceholder
}
