package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/flags"
)

type ValidateCmd struct {
	*cmd.BaseCmd
	cfgLoader config.Loader
}

func NewValidateCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ValidateCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long:  `Validate the bruno-doc.toml configuration file against the configuration schema`,
		RunE:  c.run,
		Args:  cobra.NoArgs,
	}

	return cobraCmd, nil
}

func (c *ValidateCmd) run(cobraCmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(flags.ConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", flags.ConfigFile)
		}
		return fmt.Errorf("failed to stat config file (%s): %w", flags.ConfigFile, err)
	}

	cfg, _, err := c.LoadConfig(cobraCmd, c.cfgLoader, config.Overrides{})
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(cobraCmd.ErrOrStderr(), "✗ Configuration validation failed: %v\n", err)
		return err
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✅ Configuration is valid: %s\n", flags.ConfigFile)
	return nil
}
