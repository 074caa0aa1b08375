package docs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options contains optional configuration for the Builder.
// NewOptions should be used to create instances of Options.
type Options struct {
	// DryRun runs enumeration and extraction without touching the destination.
	DryRun bool

	// WorkDir is the directory relative paths are resolved against.
	WorkDir string
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
// WorkDir defaults to the process working directory.
func NewOptions(opt ...Option) (Options, error) {
	options := Options{}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&options); err != nil {
			return Options{}, err
		}
	}

	if options.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Options{}, fmt.Errorf("error getting current directory: %w", err)
		}
		options.WorkDir = wd
	}

	return options, nil
}

// WithDryRun enables or disables dry-run (test) mode.
func WithDryRun(enabled bool) Option {
	return func(o *Options) error {
		o.DryRun = enabled
		return nil
	}
}

// WithWorkDir sets the directory relative paths are resolved against.
func WithWorkDir(dir string) Option {
	return func(o *Options) error {
		if !filepath.IsAbs(dir) {
			return fmt.Errorf("work directory must be absolute: %s", dir)
		}
		o.WorkDir = filepath.Clean(dir)
		return nil
	}
}
