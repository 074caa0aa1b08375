// Package options holds the dependencies that can be injected into commands.
package options

import (
	"fmt"
	"path/filepath"

	"github.com/brunodoc/bruno-doc/internal/cmd/output"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/printer"
	"github.com/brunodoc/bruno-doc/internal/prompt"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	// ConfigLoader loads the configuration file.
	// When nil, commands use a config.DefaultLoader reporting to their console.
	ConfigLoader config.Loader

	// ConfigInitializer creates the configuration file for 'init'.
	ConfigInitializer config.Initializer

	// Confirmer asks the user before files are overwritten.
	// When nil, commands prompt on their own input and output streams.
	Confirmer prompt.Confirmer

	// FS is used for all documentation file access.
	FS files.System

	// Printer renders endpoints as text.
	Printer output.Printer[docs.FileReport]

	// WorkDir is the directory relative paths are resolved against.
	// When empty, the process working directory is used.
	WorkDir string
}

func defaultOptions() CmdOptions {
	return CmdOptions{
		ConfigInitializer: &config.DefaultLoader{},
		FS:                files.OS{},
		Printer:           &printer.EndpointPrinter{},
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		o.ConfigLoader = l
		return nil
	}
}

func WithConfigInitializer(i config.Initializer) CmdOption {
	return func(o *CmdOptions) error {
		o.ConfigInitializer = i
		return nil
	}
}

func WithConfirmer(c prompt.Confirmer) CmdOption {
	return func(o *CmdOptions) error {
		o.Confirmer = c
		return nil
	}
}

func WithFS(fsys files.System) CmdOption {
	return func(o *CmdOptions) error {
		if fsys == nil {
			return fmt.Errorf("file system cannot be nil")
		}
		o.FS = fsys
		return nil
	}
}

func WithPrinter(p output.Printer[docs.FileReport]) CmdOption {
	return func(o *CmdOptions) error {
		o.Printer = p
		return nil
	}
}

func WithWorkDir(dir string) CmdOption {
	return func(o *CmdOptions) error {
		if !filepath.IsAbs(dir) {
			return fmt.Errorf("work directory must be absolute: %s", dir)
		}
		o.WorkDir = dir
		return nil
	}
}
