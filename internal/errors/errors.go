// Package errors defines domain-level errors used throughout the application.
// Commands log these and exit non-zero, except where noted below.
//
// NOTE: Important for developers
// When adding a new error here, consider how the build command reports it and whether
// the preview server should map it to something other than HTTP 500 (mapError in internal/server/server.go).
package errors

import (
	"errors"
)

var (
	// ErrSourcePathNotFound indicates that the configured source directory is missing or unreadable.
	// Fatal to the whole run.
	ErrSourcePathNotFound = errors.New("source path not found")

	// ErrNoFilesFound indicates that the source directory contains no .bru files.
	// This is reported as a warning; the run completes successfully without writing anything.
	ErrNoFilesFound = errors.New("no .bru files found")

	// ErrMissingMetadata indicates that a .bru file has no meta section and no docs section.
	// The file is skipped and the run continues.
	ErrMissingMetadata = errors.New("meta section is required to be a valid bru file")

	// ErrMissingName indicates that the meta section of a .bru file does not declare a name.
	// The file is skipped and the run continues.
	ErrMissingName = errors.New("a name is required to be a valid bru file")

	// ErrOverwriteDeclined indicates that the user chose not to overwrite an existing destination file.
	ErrOverwriteDeclined = errors.New("overwrite of existing documentation declined")

	// ErrDestinationWrite indicates an I/O failure while preparing or writing the destination file.
	// Partial output is not cleaned up.
	ErrDestinationWrite = errors.New("failed to write documentation")

	// ErrNotInteractive indicates that a confirmation was required but no terminal is attached.
	ErrNotInteractive = errors.New("confirmation required but input is not a terminal")
)
