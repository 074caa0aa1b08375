package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/brunodoc/bruno-doc/internal/config"
)

const (
	FlagNameSource      = "source"
	FlagNameDestination = "destination"
	FlagNameHeader      = "header"
	FlagNameTail        = "tail"
	FlagNameExcludes    = "excludes"
	FlagNameForce       = "force"
	FlagNameSilent      = "silent"
	FlagNameVerbose     = "verbose"
	FlagNameDebug       = "debug"
)

// ConfigFlags binds the command line flags that override configuration file values.
// Only flags set explicitly on the command line are applied.
type ConfigFlags struct {
	source      string
	destination string
	header      string
	tail        string
	excludes    []string
	force       bool
	silent      bool
	verbose     bool
	debug       bool
}

// Register adds the override flags to the command.
// The force flag is only added for commands that write the documentation.
func (f *ConfigFlags) Register(cobraCmd *cobra.Command, writes bool) {
	fs := cobraCmd.Flags()

	fs.StringVarP(&f.source, FlagNameSource, "s", "", "folder containing the .bru files")
	fs.StringVarP(&f.destination, FlagNameDestination, "d", "", "markdown file the documentation is written to")
	fs.StringVar(&f.header, FlagNameHeader, "", "markdown file added before the documentation")
	fs.StringVar(&f.tail, FlagNameTail, "", "markdown file added after the documentation")
	fs.StringSliceVar(&f.excludes, FlagNameExcludes, nil, ".bru file names to leave out (can be repeated or comma separated)")
	if writes {
		fs.BoolVarP(&f.force, FlagNameForce, "f", false, "overwrite existing documentation without asking")
	}
	fs.BoolVarP(&f.silent, FlagNameSilent, "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, FlagNameVerbose, "r", false, "show each file as it is processed")
	fs.BoolVar(&f.debug, FlagNameDebug, false, "show debug output")

	cobraCmd.MarkFlagsMutuallyExclusive(FlagNameSilent, FlagNameVerbose)
}

// Overrides returns the configuration overrides for the flags that were set.
func (f *ConfigFlags) Overrides(fs *pflag.FlagSet) config.Overrides {
	var o config.Overrides

	if fs.Changed(FlagNameSource) {
		o.Source = &f.source
	}
	if fs.Changed(FlagNameDestination) {
		o.Destination = &f.destination
	}
	if fs.Changed(FlagNameHeader) {
		o.Header = &f.header
	}
	if fs.Changed(FlagNameTail) {
		o.Tail = &f.tail
	}
	if fs.Changed(FlagNameExcludes) {
		o.Excludes = append([]string{}, f.excludes...)
	}
	if fs.Changed(FlagNameForce) {
		o.Force = &f.force
	}
	if fs.Changed(FlagNameSilent) {
		o.Silent = &f.silent
	}
	if fs.Changed(FlagNameVerbose) {
		o.Verbose = &f.verbose
	}
	if fs.Changed(FlagNameDebug) {
		o.Debug = &f.debug
	}

	return o
}
