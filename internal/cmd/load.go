package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/flags"
	"github.com/brunodoc/bruno-doc/internal/logging"
)

// LoadConfig loads the configuration file named by the config file flag and applies overrides.
//
// The returned console uses the logging options of the effective configuration.
// Messages logged while loading use the options given on the command line.
// When loader is nil a config.DefaultLoader reporting to the console is used.
func (c *BaseCmd) LoadConfig(
	cobraCmd *cobra.Command,
	loader config.Loader,
	overrides config.Overrides,
) (*config.Config, *logging.Console, error) {
	console, err := c.Console(cobraCmd, consoleOptions(overrides))
	if err != nil {
		return nil, nil, err
	}

	if loader == nil {
		loader = &config.DefaultLoader{Logger: console}
	}

	cfg, err := loader.Load(flags.ConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config file: %w", err)
	}

	cfg.Apply(overrides)

	return cfg, console.WithOptions(cfg.ConsoleOptions()), nil
}

// consoleOptions returns the logging options set on the command line.
func consoleOptions(o config.Overrides) logging.Options {
	var opts logging.Options
	if o.Silent != nil {
		opts.Silent = *o.Silent
	}
	if o.Verbose != nil {
		opts.Verbose = *o.Verbose
	}
	if o.Debug != nil {
		opts.Debug = *o.Debug
	}
	return opts
}
