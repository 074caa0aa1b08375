package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/perms"
)

const (
	DefaultConfigFile  = "bruno-doc.toml"
	DefaultSource      = "Collections"
	DefaultDestination = "documentation/api.md"
	DefaultHeader      = "documentation/header.md"
	DefaultTail        = "documentation/tail.md"
)

// DefaultExcludes returns the .bru files excluded when no configuration says otherwise.
// These are the collection and environment files Bruno creates.
func DefaultExcludes() []string {
	return []string{"collections.bru", "Local.bru"}
}

// Defaults returns the configuration used when no configuration file can be found.
func Defaults() *Config {
	return &Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Header:      DefaultHeader,
		Tail:        DefaultTail,
		Excludes:    DefaultExcludes(),
	}
}

// Init creates the skeleton configuration file for a bruno-doc project.
// An existing file is only replaced when force is set.
func (d *DefaultLoader) Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return Defaults().SaveAs(path)
}

// Load reads the configuration file at path.
//
// When path does not exist the user-specific configuration file is tried
// (see files.UserSpecificConfigDir), and failing that the built-in defaults are used.
// The returned configuration remembers path, so saving always targets the project file.
func (d *DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	source, err := d.resolve(path)
	if err != nil {
		return nil, err
	}

	var cfg *Config
	if source == "" {
		d.log(logging.LevelDebug, "No configuration file found; using defaults", "path", path)
		cfg = Defaults()
	} else {
		d.log(logging.LevelVerbose, "Reading config file", "path", source)
		cfg, err = d.decode(source)
		if err != nil {
			return nil, err
		}
	}

	cfg.configFilePath = path
	d.normalize(cfg)

	return cfg, nil
}

// resolve returns the file to read for path, or an empty string when no file exists.
func (d *DefaultLoader) resolve(path string) (string, error) {
	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: failed to stat config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	dir, err := files.UserSpecificConfigDir()
	if err != nil {
		d.log(logging.LevelDebug, "User config directory unavailable", "error", err)
		return "", nil
	}

	userPath := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	}

	return "", nil
}

// decode reads, schema-validates and decodes the configuration file.
func (d *DefaultLoader) decode(path string) (*Config, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", ErrConfigLoadFailed, path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: config file is empty (%s)", ErrConfigLoadFailed, path)
	}

	warnings, err := validateDocument(raw)
	for _, w := range warnings {
		d.log(logging.LevelWarn, w)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to validate config (%s): %w", ErrConfigLoadFailed, path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	return &cfg, nil
}

// normalize resolves conflicting options the way the command line does.
func (d *DefaultLoader) normalize(cfg *Config) {
	if cfg.Excludes == nil {
		cfg.Excludes = []string{}
	}

	if cfg.LogOptions.Silent && cfg.LogOptions.Verbose {
		d.log(logging.LevelWarn, "Verbose and silent are mutually exclusive; ignoring both")
		cfg.LogOptions.Silent = false
		cfg.LogOptions.Verbose = false
	}
}

func (d *DefaultLoader) log(level logging.Level, msg string, args ...any) {
	if d.Logger != nil {
		d.Logger.Log(level, msg, args...)
	}
}

// Apply overrides configuration values with those supplied on the command line.
// A command line silent or verbose flag clears the opposite option from the file.
func (c *Config) Apply(o Overrides) {
	if o.Source != nil {
		c.Source = *o.Source
	}
	if o.Destination != nil {
		c.Destination = *o.Destination
	}
	if o.Header != nil {
		c.Header = *o.Header
	}
	if o.Tail != nil {
		c.Tail = *o.Tail
	}
	if o.Excludes != nil {
		c.Excludes = o.Excludes
	}
	if o.Force != nil {
		c.Force = *o.Force
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Silent != nil {
		c.LogOptions.Silent = *o.Silent
		if *o.Silent {
			c.LogOptions.Verbose = false
		}
	}
	if o.Verbose != nil {
		c.LogOptions.Verbose = *o.Verbose
		if *o.Verbose {
			c.LogOptions.Silent = false
		}
	}
}

// Validate checks the configuration values against the configuration schema.
func (c *Config) Validate() error {
	_, err := validateDocument(c)
	return err
}

// SaveConfig writes the configuration to the file it was loaded from.
func (c *Config) SaveConfig() error {
	return c.saveConfig()
}

// SaveAs writes the configuration to path and tracks it as the configuration file.
func (c *Config) SaveAs(path string) error {
	c.configFilePath = path
	return c.saveConfig()
}

func (c *Config) saveConfig() error {
	if c.configFilePath == "" {
		return fmt.Errorf("config file path not present")
	}

	if err := c.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}

	return os.WriteFile(c.configFilePath, buf.Bytes(), perms.RegularFile)
}
