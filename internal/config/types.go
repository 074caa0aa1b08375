package config

import (
	"slices"

	"github.com/brunodoc/bruno-doc/internal/logging"
)

var _ Provider = (*DefaultLoader)(nil)

type Loader interface {
	Load(path string) (*Config, error)
}

type Initializer interface {
	Init(path string, force bool) error
}

type Provider interface {
	Initializer
	Loader
}

// Config represents the bruno-doc.toml file structure.
type Config struct {
	// Source is the folder containing the .bru files.
	// e.g. 'Collections'
	Source string `json:"source" toml:"source" yaml:"source"`

	// Destination is the markdown file the documentation is written to.
	// e.g. 'documentation/api.md'
	Destination string `json:"destination" toml:"destination" yaml:"destination"`

	// Header is an optional markdown file copied verbatim to the start of the documentation.
	Header string `json:"header,omitempty" toml:"header,omitempty" yaml:"header,omitempty"`

	// Tail is an optional markdown file copied verbatim to the end of the documentation.
	Tail string `json:"tail,omitempty" toml:"tail,omitempty" yaml:"tail,omitempty"`

	// Excludes lists .bru file names (not paths) that are never documented.
	Excludes []string `json:"excludes,omitempty" toml:"excludes,omitempty" yaml:"excludes,omitempty"`

	// Force overwrites existing documentation without asking.
	Force bool `json:"force" toml:"force" yaml:"force"`

	// Debug enables debug output on the console.
	Debug bool `json:"debug" toml:"debug" yaml:"debug"`

	LogOptions logging.Options `json:"log_options" toml:"log_options" yaml:"log_options"`

	configFilePath string `toml:"-"`
}

// Overrides carries values supplied on the command line.
// Nil fields were not supplied and leave the configuration untouched.
type Overrides struct {
	Source      *string
	Destination *string
	Header      *string
	Tail        *string
	Excludes    []string
	Force       *bool
	Debug       *bool
	Silent      *bool
	Verbose     *bool
}

type DefaultLoader struct {
	// Logger receives warnings about ignored configuration keys. Optional.
	Logger logging.Logger
}

// ConsoleOptions returns the logging options implied by the configuration.
func (c *Config) ConsoleOptions() logging.Options {
	opts := c.LogOptions
	opts.Debug = c.Debug
	return opts
}

// Path returns the config file this configuration was loaded from, or will be saved to.
func (c *Config) Path() string {
	return c.configFilePath
}

// IsExcluded reports whether the file name is in the exclude list (case-sensitive exact match).
func (c *Config) IsExcluded(name string) bool {
	return slices.Contains(c.Excludes, name)
}

// Equal reports whether two configurations hold the same persisted values.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Source == other.Source &&
		c.Destination == other.Destination &&
		c.Header == other.Header &&
		c.Tail == other.Tail &&
		slices.Equal(c.Excludes, other.Excludes) &&
		c.Force == other.Force &&
		c.Debug == other.Debug &&
		c.LogOptions.Silent == other.LogOptions.Silent &&
		c.LogOptions.Verbose == other.LogOptions.Verbose
}
