package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/flags"
)

// InitCmd should be used to represent the 'init' command.
type InitCmd struct {
	*cmd.BaseCmd
	Force          bool
	cfgInitializer config.Initializer
	workDir        string
}

// NewInitCmd creates a newly configured (Cobra) command.
func NewInitCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InitCmd{
		BaseCmd:        baseCmd,
		cfgInitializer: opts.ConfigInitializer,
		workDir:        opts.WorkDir,
	}

	cobraCommand := &cobra.Command{
		Use:   "init",
		Short: "Initializes the current directory as a " + cmd.AppName + " project",
		Long:  c.longDescription(),
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	cobraCommand.Flags().BoolVarP(
		&c.Force,
		"force",
		"f",
		false,
		"Overwrite an existing config file",
	)

	return cobraCommand, nil
}

func (c *InitCmd) longDescription() string {
	return fmt.Sprintf(
		"Initializes the current directory as a %s project, creating a %s configuration file "+
			"populated with the default settings.\n\n"+
			"The configuration file path can be overridden using the `--%s` flag or the `%s` environment variable",
		cmd.AppName,
		flags.DefaultConfigFile,
		flags.FlagNameConfigFile,
		flags.EnvVarConfigFile,
	)
}

func (c *InitCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	initFilePath := flags.ConfigFile
	if !filepath.IsAbs(initFilePath) {
		dir := c.workDir
		if dir == "" {
			dir, err = os.Getwd()
			if err != nil {
				logger.Error("Failed to get working directory", "error", err)
				return fmt.Errorf("error getting current directory: %w", err)
			}
		}
		initFilePath = filepath.Join(dir, initFilePath)
	}

	if _, err := fmt.Fprintf(cobraCmd.OutOrStdout(), "🚀 Initializing %s project at: %s\n", cmd.AppName, initFilePath); err != nil {
		return err
	}

	if err := c.cfgInitializer.Init(initFilePath, c.Force); err != nil {
		logger.Error("Project initialization failed", "error", err)
		return fmt.Errorf("error initializing %s project: %w", cmd.AppName, err)
	}

	if _, err := fmt.Fprintf(cobraCmd.OutOrStdout(), "✅ Config file created: %s\n", initFilePath); err != nil {
		return err
	}

	return nil
}
