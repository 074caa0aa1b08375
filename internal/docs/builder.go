// Package docs assembles the API documentation from a collection of .bru files.
package docs

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/brunodoc/bruno-doc/internal/bru"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/errors"
	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/nilcheck"
	"github.com/brunodoc/bruno-doc/internal/prompt"
)

// Builder combines the documentation of every .bru file below a source folder into one markdown file.
// NewBuilder should be used to create instances of Builder.
type Builder struct {
	logger    logging.Logger
	fs        files.System
	confirmer prompt.Confirmer
	workDir   string
	dryRun    bool
}

// NewBuilder creates a Builder with the provided dependencies and options.
func NewBuilder(deps Dependencies, opt ...Option) (*Builder, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies for documentation builder: %w", err)
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid documentation builder options: %w", err)
	}

	confirmer := deps.Confirmer
	if nilcheck.IsNil(confirmer) {
		confirmer = nil
	}

	return &Builder{
		logger:    deps.Logger,
		fs:        deps.FS,
		confirmer: confirmer,
		workDir:   opts.WorkDir,
		dryRun:    opts.DryRun,
	}, nil
}

// Build writes the documentation described by cfg to its destination.
//
// Files are processed one at a time in enumeration order: the header first, then the
// contribution of every non-excluded .bru file, then the tail. An existing destination is
// replaced when cfg.Force or silent logging is set, or when the Confirmer agrees.
// In dry-run mode the destination is never touched.
//
// The destination is always closed before Build returns. A failure part way through leaves
// whatever was already written in place.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) (report *Report, err error) {
	report, paths, err := b.scan(cfg)
	if err != nil || len(paths) == 0 {
		return report, err
	}

	if b.dryRun {
		if err := b.render(ctx, cfg, paths, io.Discard, report); err != nil {
			return report, err
		}
		b.logger.Log(logging.LevelVerbose, "Test complete; no documentation written")
		return report, nil
	}

	if err := b.prepareDestination(cfg, report.Destination); err != nil {
		return report, err
	}

	w, err := b.fs.Create(report.Destination)
	if err != nil {
		return report, fmt.Errorf("%w: failed to open '%s': %w", errors.ErrDestinationWrite, report.Destination, err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close '%s': %w", errors.ErrDestinationWrite, report.Destination, closeErr)
		}
	}()

	if err := b.render(ctx, cfg, paths, w, report); err != nil {
		return report, err
	}

	report.Written = true
	b.logger.Log(logging.LevelVerbose, fmt.Sprintf("Documentation written to '%s'", report.Destination))

	return report, nil
}

// Render writes the documentation described by cfg to w without touching the destination.
func (b *Builder) Render(ctx context.Context, cfg *config.Config, w io.Writer) (*Report, error) {
	report, paths, err := b.scan(cfg)
	if err != nil || len(paths) == 0 {
		return report, err
	}

	if err := b.render(ctx, cfg, paths, w, report); err != nil {
		return report, err
	}

	return report, nil
}

// scan resolves the configured paths and enumerates the .bru files.
// An empty collection is reported as a warning and yields no paths and no error.
func (b *Builder) scan(cfg *config.Config) (*Report, []string, error) {
	report := &Report{
		Source:      b.resolve(cfg.Source),
		Destination: b.resolve(cfg.Destination),
		DryRun:      b.dryRun,
		Files:       []FileReport{},
	}

	paths, err := bru.Enumerate(b.fs, report.Source)
	if err != nil {
		b.logger.Log(logging.LevelWarn, fmt.Sprintf("Unable to read source folder '%s'", report.Source), "error", err)
		return report, nil, err
	}

	if len(paths) == 0 {
		b.logger.Log(logging.LevelWarn, fmt.Sprintf("%s in '%s'", errors.ErrNoFilesFound, report.Source))
		return report, nil, nil
	}

	b.logger.Log(logging.LevelDebug, fmt.Sprintf("Found %d .bru files", len(paths)), "source", report.Source)

	return report, paths, nil
}

// prepareDestination removes an existing destination file, asking first when required,
// and makes sure the destination folder exists.
func (b *Builder) prepareDestination(cfg *config.Config, dst string) error {
	exists, err := files.Exists(b.fs, dst)
	if err != nil {
		return fmt.Errorf("%w: failed to stat '%s': %w", errors.ErrDestinationWrite, dst, err)
	}

	if exists {
		if !cfg.Force && !cfg.LogOptions.Silent {
			ok, err := b.confirmOverwrite(dst)
			if err != nil {
				return err
			}
			if !ok {
				b.logger.Log(logging.LevelInfo, "Existing documentation kept; nothing written")
				return fmt.Errorf("%w: '%s'", errors.ErrOverwriteDeclined, dst)
			}
		}

		b.logger.Log(logging.LevelVerbose, fmt.Sprintf("Removing existing documentation '%s'", dst))
		if err := b.fs.Remove(dst); err != nil {
			return fmt.Errorf("%w: failed to remove '%s': %w", errors.ErrDestinationWrite, dst, err)
		}
	}

	if err := files.EnsureParentDir(b.fs, dst); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrDestinationWrite, err)
	}

	return nil
}

func (b *Builder) confirmOverwrite(dst string) (bool, error) {
	if b.confirmer == nil {
		return false, fmt.Errorf("%w: '%s' already exists, use --force to overwrite", errors.ErrNotInteractive, dst)
	}

	ok, err := b.confirmer.ConfirmOverwrite(dst)
	if err != nil {
		return false, fmt.Errorf("failed to confirm overwrite of '%s': %w", dst, err)
	}

	b.logger.Log(logging.LevelVerbose, fmt.Sprintf("User provided documentation overwrite confirmation: %t", ok))
	return ok, nil
}

// render writes header, file contributions and tail to w, recording each file in report.
func (b *Builder) render(ctx context.Context, cfg *config.Config, paths []string, w io.Writer, report *Report) error {
	if err := b.writeFragment(w, "Header", cfg.Header); err != nil {
		return err
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := b.process(cfg, p, w)
		if err != nil {
			return err
		}
		report.Files = append(report.Files, entry)
	}

	return b.writeFragment(w, "Tail", cfg.Tail)
}

// process handles one .bru file. Only read and write failures are returned; files without
// usable content are recorded and skipped.
func (b *Builder) process(cfg *config.Config, path string, w io.Writer) (FileReport, error) {
	entry := FileReport{Path: path}

	if cfg.IsExcluded(filepath.Base(path)) {
		b.logger.Log(logging.LevelVerbose, fmt.Sprintf("Skipping excluded file '%s'", path))
		entry.Status = bru.StatusExcluded
		return entry, nil
	}

	b.logger.Log(logging.LevelVerbose, fmt.Sprintf("Processing '%s'...", path))

	data, err := b.fs.ReadFile(path)
	if err != nil {
		return entry, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	extraction, err := bru.Extract(string(data))
	entry.Name = extraction.Name
	entry.Status = extraction.Status
	if err != nil {
		if !stdErrors.Is(err, errors.ErrMissingMetadata) && !stdErrors.Is(err, errors.ErrMissingName) {
			return entry, err
		}
		b.logger.Log(logging.LevelWarn, fmt.Sprintf("'%s': %s", path, err))
		return entry, nil
	}

	entry.Title = bru.Title(extraction.Content)

	if _, err := io.WriteString(w, extraction.Content); err != nil {
		return entry, fmt.Errorf("%w: %w", errors.ErrDestinationWrite, err)
	}

	return entry, nil
}

// writeFragment copies an optional header or tail file verbatim to w.
// Unset paths are skipped silently, missing files with a warning.
func (b *Builder) writeFragment(w io.Writer, kind string, path string) error {
	if path == "" {
		return nil
	}

	resolved := b.resolve(path)
	exists, err := files.Exists(b.fs, resolved)
	if err != nil {
		return fmt.Errorf("failed to stat %s file '%s': %w", kind, resolved, err)
	}
	if !exists {
		b.logger.Log(logging.LevelWarn, fmt.Sprintf("%s file '%s' not found; skipping", kind, resolved))
		return nil
	}

	data, err := b.fs.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("failed to read %s file '%s': %w", kind, resolved, err)
	}

	b.logger.Log(logging.LevelVerbose, fmt.Sprintf("Adding %s file '%s'", kind, resolved))
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrDestinationWrite, err)
	}

	return nil
}

// resolve makes path absolute against the builder's working directory.
func (b *Builder) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(b.workDir, path)
}
