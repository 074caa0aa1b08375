package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/bru"
	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/prompt"
)

// BuildCmd should be used to represent the 'build' command.
type BuildCmd struct {
	*cmd.BaseCmd
	Test       bool
	SaveConfig bool
	cfgFlags   cmd.ConfigFlags
	cfgLoader  config.Loader
	confirmer  prompt.Confirmer
	fs         files.System
	workDir    string
}

// NewBuildCmd creates a newly configured (Cobra) command.
func NewBuildCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &BuildCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
		confirmer: opts.Confirmer,
		fs:        opts.FS,
		workDir:   opts.WorkDir,
	}

	cobraCommand := &cobra.Command{
		Use:   "build",
		Short: "Builds the API documentation",
		Long:  c.longDescription(),
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	c.cfgFlags.Register(cobraCommand, true)

	cobraCommand.Flags().BoolVarP(
		&c.Test,
		"test",
		"t",
		false,
		"Run the build without writing the documentation",
	)

	cobraCommand.Flags().BoolVar(
		&c.SaveConfig,
		"save-config",
		false,
		"Save the effective options to the config file",
	)

	return cobraCommand, nil
}

func (c *BuildCmd) longDescription() string {
	return `Builds the API documentation.

Every .bru file below the source folder contributes its 'docs' section, in folder order,
between the optional header and tail files. Files without a 'docs' section contribute a
placeholder naming the endpoint. Existing documentation is only replaced after
confirmation, unless --force or --silent is set.`
}

// run is configured (via NewBuildCmd) to be called by the Cobra framework when the command is executed.
func (c *BuildCmd) run(cobraCmd *cobra.Command, _ []string) error {
	cfg, console, err := c.LoadConfig(cobraCmd, c.cfgLoader, c.cfgFlags.Overrides(cobraCmd.Flags()))
	if err != nil {
		return err
	}

	confirmer := c.confirmer
	if confirmer == nil {
		confirmer = prompt.NewTerminal(cobraCmd.InOrStdin(), cobraCmd.OutOrStdout())
	}

	if c.SaveConfig {
		if err := c.saveConfig(console, confirmer, cfg); err != nil {
			return err
		}
	}

	if c.Test {
		console.Log(logging.LevelInfo, "Testing build process...")
	} else {
		console.Log(logging.LevelInfo, "Building documentation...")
	}

	builderOpts := []docs.Option{docs.WithDryRun(c.Test)}
	if c.workDir != "" {
		builderOpts = append(builderOpts, docs.WithWorkDir(c.workDir))
	}

	builder, err := docs.NewBuilder(
		docs.Dependencies{
			Logger:    console,
			FS:        c.fs,
			Confirmer: confirmer,
		},
		builderOpts...,
	)
	if err != nil {
		return err
	}

	report, err := builder.Build(cobraCmd.Context(), cfg)
	if err != nil {
		return err
	}

	summarize(console, report)

	return nil
}

// saveConfig writes the effective configuration to the config file when it differs from the saved one.
func (c *BuildCmd) saveConfig(console logging.Logger, confirmer prompt.Confirmer, cfg *config.Config) error {
	loader := c.cfgLoader
	if loader == nil {
		loader = &config.DefaultLoader{}
	}

	saved, err := loader.Load(cfg.Path())
	if err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}

	if saved.Equal(cfg) {
		console.Log(logging.LevelVerbose, "Configuration unchanged; not saving")
		return nil
	}

	if !cfg.Force && !cfg.LogOptions.Silent {
		ok, err := confirmer.ConfirmSaveConfig(cfg.Path())
		if err != nil {
			return fmt.Errorf("failed to confirm saving config: %w", err)
		}
		if !ok {
			console.Log(logging.LevelInfo, "Configuration not saved")
			return nil
		}
	}

	if err := cfg.SaveConfig(); err != nil {
		return fmt.Errorf("error saving config file: %w", err)
	}

	console.Log(logging.LevelInfo, fmt.Sprintf("Configuration saved to '%s'", cfg.Path()))
	return nil
}

// summarize reports per-file results at verbose level, then the outcome of the build.
func summarize(console logging.Logger, report *docs.Report) {
	if len(report.Files) == 0 {
		return
	}

	for _, f := range report.Files {
		console.Log(logging.LevelVerbose, fmt.Sprintf("%-17s %s", f.Status, f.Path))
	}

	skipped := report.Count(bru.StatusMissingMetadata) + report.Count(bru.StatusMissingName)
	summary := fmt.Sprintf(
		"%d of %d files documented (%d placeholders, %d excluded, %d skipped)",
		report.Contributed(),
		len(report.Files),
		report.Count(bru.StatusPlaceholder),
		report.Count(bru.StatusExcluded),
		skipped,
	)

	switch {
	case report.DryRun:
		console.Log(logging.LevelInfo, "Test complete: "+summary)
	case report.Written:
		console.Log(logging.LevelInfo, fmt.Sprintf("Documentation written to '%s': %s", report.Destination, summary))
	}
}
