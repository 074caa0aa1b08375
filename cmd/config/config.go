package config

import (
	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
)

// NewConfigCmd creates the 'config' command and its sub-commands.
func NewConfigCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Manages the bruno-doc configuration.",
		Long:  "Shows and validates the bruno-doc configuration file.",
	}

	fns := []func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error){
		NewShowCmd,
		NewValidateCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(baseCmd, opt...)
		if err != nil {
			return nil, err
		}
		cobraCmd.AddCommand(tempCmd)
	}

	return cobraCmd, nil
}
