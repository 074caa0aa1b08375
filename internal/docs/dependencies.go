package docs

import (
	"fmt"

	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/nilcheck"
	"github.com/brunodoc/bruno-doc/internal/prompt"
)

// Dependencies contains the external collaborators of the Builder.
type Dependencies struct {
	// Logger receives progress, warnings and per-file skip reasons.
	Logger logging.Logger

	// FS is used for every file system access.
	FS files.System

	// Confirmer is asked before an existing destination is replaced.
	// Optional: without it an overwrite that needs confirmation fails.
	Confirmer prompt.Confirmer
}

// Validate ensures all required dependencies are provided.
func (d Dependencies) Validate() error {
	if nilcheck.IsNil(d.Logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if nilcheck.IsNil(d.FS) {
		return fmt.Errorf("file system cannot be nil")
	}
	return nil
}
