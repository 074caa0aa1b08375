package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/cmd/output"
	"github.com/brunodoc/bruno-doc/internal/config"
)

// ShowCmd should be used to represent the 'config show' command.
type ShowCmd struct {
	*cmd.BaseCmd
	Format    *cmd.FormatFlag
	cfgLoader config.Loader
}

// NewShowCmd creates a newly configured (Cobra) command.
func NewShowCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ShowCmd{
		BaseCmd:   baseCmd,
		Format:    cmd.NewFormatFlag(cmd.FormatTOML, cmd.AllowedConfigFormats()),
		cfgLoader: opts.ConfigLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "show",
		Short: "Shows the effective configuration",
		Long: "Shows the configuration bruno-doc would use, after falling back to the " +
			"user configuration file or the built-in defaults.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	cobraCmd.Flags().Var(
		c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", cmd.AllowedConfigFormats().String()),
	)

	return cobraCmd, nil
}

func (c *ShowCmd) run(cobraCmd *cobra.Command, _ []string) error {
	w := cobraCmd.OutOrStdout()
	cfg, _, err := c.LoadConfig(cobraCmd, c.cfgLoader, config.Overrides{})

	// TOML mirrors the config file itself, so it is written without a result wrapper.
	if c.Format.Value() == cmd.FormatTOML {
		if err != nil {
			return err
		}
		return toml.NewEncoder(w).Encode(cfg)
	}

	handler, hErr := c.handler(w)
	if hErr != nil {
		return hErr
	}

	if err != nil {
		if hErr := handler.HandleError(err); hErr != nil {
			return hErr
		}
		return err
	}

	return handler.HandleResult(cfg)
}

func (c *ShowCmd) handler(w io.Writer) (output.Handler[*config.Config], error) {
	switch c.Format.Value() {
	case cmd.FormatJSON:
		return output.NewJSONHandler[*config.Config](w, 2), nil
	case cmd.FormatYAML:
		return output.NewYAMLHandler[*config.Config](w, 2), nil
	default:
		return nil, fmt.Errorf("unexpected config format: %s", c.Format.Value())
	}
}
