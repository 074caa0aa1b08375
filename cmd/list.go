package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/cmd/output"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/printer"
)

// ListCmd should be used to represent the 'list' command.
type ListCmd struct {
	*cmd.BaseCmd
	Format    *cmd.FormatFlag
	cfgFlags  cmd.ConfigFlags
	cfgLoader config.Loader
	fs        files.System
	printer   output.Printer[docs.FileReport]
	workDir   string
}

// NewListCmd creates a newly configured (Cobra) command.
func NewListCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ListCmd{
		BaseCmd:   baseCmd,
		Format:    cmd.NewFormatFlag(cmd.FormatText, cmd.AllowedOutputFormats()),
		cfgLoader: opts.ConfigLoader,
		fs:        opts.FS,
		printer:   opts.Printer,
		workDir:   opts.WorkDir,
	}

	cobraCommand := &cobra.Command{
		Use:   "list",
		Short: "Lists the .bru files and how each one is documented",
		Long: "Lists every .bru file in the source folder, in documentation order, with the endpoint " +
			"name, the first heading of its documentation, and whether it is documented, " +
			"gets a placeholder, is excluded or is skipped. Nothing is written.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	c.cfgFlags.Register(cobraCommand, false)

	cobraCommand.Flags().Var(
		c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", cmd.AllowedOutputFormats().String()),
	)

	return cobraCommand, nil
}

func (c *ListCmd) run(cobraCmd *cobra.Command, _ []string) error {
	handler, err := c.handler(cobraCmd.OutOrStdout())
	if err != nil {
		return err
	}

	cfg, console, err := c.LoadConfig(cobraCmd, c.cfgLoader, c.cfgFlags.Overrides(cobraCmd.Flags()))
	if err != nil {
		return handleError(handler, err)
	}

	builderOpts := []docs.Option{docs.WithDryRun(true)}
	if c.workDir != "" {
		builderOpts = append(builderOpts, docs.WithWorkDir(c.workDir))
	}

	builder, err := docs.NewBuilder(docs.Dependencies{Logger: console, FS: c.fs}, builderOpts...)
	if err != nil {
		return handleError(handler, err)
	}

	report, err := builder.Render(cobraCmd.Context(), cfg, io.Discard)
	if err != nil {
		return handleError(handler, err)
	}

	return handler.HandleResults(report.Files...)
}

func (c *ListCmd) handler(w io.Writer) (output.Handler[docs.FileReport], error) {
	switch c.Format.Value() {
	case cmd.FormatJSON:
		return output.NewJSONHandler[docs.FileReport](w, 2), nil
	case cmd.FormatYAML:
		return output.NewYAMLHandler[docs.FileReport](w, 2), nil
	case cmd.FormatText:
		p := c.printer
		if p == nil {
			p = &printer.EndpointPrinter{}
		}
		p.SetHeader(printer.DefaultEndpointHeader)
		return output.NewTextHandler[docs.FileReport](w, p), nil
	default:
		return nil, fmt.Errorf("unexpected output format: %s", c.Format.Value())
	}
}

// handleError renders err in the selected format and still fails the command.
func handleError[T any](handler output.Handler[T], err error) error {
	if hErr := handler.HandleError(err); hErr != nil {
		return hErr
	}
	return err
}
