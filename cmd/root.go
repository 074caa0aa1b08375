package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configcmd "github.com/brunodoc/bruno-doc/cmd/config"
	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/flags"
	"github.com/brunodoc/bruno-doc/internal/logging"
)

type createCmdFunc func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error)

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	baseCmd := &cmd.BaseCmd{}
	rootCmd, err := NewRootCmd(baseCmd)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error creating root command: %s\n", err)
		os.Exit(1)
	}

	if err := executeAndLog(rootCmd, baseCmd); err != nil {
		os.Exit(1)
	}
}

// executeAndLog runs the command tree and reports a failure at error level,
// on the console and in the log file.
func executeAndLog(rootCmd *cobra.Command, baseCmd *cmd.BaseCmd) error {
	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	if executed == nil {
		executed = rootCmd
	}

	console, cErr := baseCmd.Console(executed, logging.Options{})
	if cErr != nil {
		_, _ = fmt.Fprintf(executed.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	console.Log(logging.LevelError, "Command failed", "error", err)
	return err
}

// NewRootCmd creates the root command with every sub-command attached.
func NewRootCmd(c *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           cmd.AppName + " <command> [flags]",
		Short:         "Generates API documentation from a collection of Bruno (.bru) request files.",
		Long:          longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       cmd.Version(),
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	fns := []createCmdFunc{
		NewBuildCmd,
		NewInitCmd,
		NewListCmd,
		NewServeCmd,
		configcmd.NewConfigCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(c, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func longDescription() string {
	return fmt.Sprintf(`'%s' combines the 'docs' sections of the .bru files in a Bruno collection
into a single markdown document, with an optional header and tail.

Endpoints without a 'docs' section are listed with a placeholder, using the name from
their 'meta' section. Settings are read from '%s' in the current directory,
falling back to the user configuration directory and then to built-in defaults.`,
		cmd.AppName,
		flags.DefaultConfigFile,
	)
}
