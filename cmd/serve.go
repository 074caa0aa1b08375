package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/api"
	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/docs"
	"github.com/brunodoc/bruno-doc/internal/files"
	"github.com/brunodoc/bruno-doc/internal/flags"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/server"
)

const defaultServeAddr = "localhost:8085"

// ServeCmd should be used to represent the 'serve' command.
type ServeCmd struct {
	*cmd.BaseCmd
	Addr            string
	CORSOrigins     []string
	CORSMaxAge      time.Duration
	ShutdownTimeout time.Duration
	cfgFlags        cmd.ConfigFlags
	cfgLoader       config.Loader
	fs              files.System
	workDir         string
}

// builderRenderer renders documentation for a fixed configuration.
type builderRenderer struct {
	builder *docs.Builder
	cfg     *config.Config
}

func (r *builderRenderer) Render(ctx context.Context, w io.Writer) (*docs.Report, error) {
	return r.builder.Render(ctx, r.cfg, w)
}

// NewServeCmd creates a newly configured (Cobra) command.
func NewServeCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ServeCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
		fs:        opts.FS,
		workDir:   opts.WorkDir,
	}

	cobraCommand := &cobra.Command{
		Use:   "serve [--addr] [--cors-origin]",
		Short: "Serves a live preview of the API documentation",
		Long: "Serves the API documentation over HTTP. The documentation is assembled from the " +
			".bru files on every request and never written to disk.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	c.cfgFlags.Register(cobraCommand, false)

	cobraCommand.Flags().StringVar(
		&c.Addr,
		"addr",
		defaultServeAddr,
		"Address for the preview server to bind",
	)

	cobraCommand.Flags().StringSliceVar(
		&c.CORSOrigins,
		"cors-origin",
		nil,
		"Origins allowed to call the preview API (can be repeated, '*' allows all)",
	)

	cobraCommand.Flags().DurationVar(
		&c.CORSMaxAge,
		"cors-max-age",
		server.DefaultCORSMaxAge(),
		"How long browsers may cache CORS preflight responses",
	)

	cobraCommand.Flags().DurationVar(
		&c.ShutdownTimeout,
		"shutdown-timeout",
		server.DefaultShutdownTimeout(),
		"Maximum time to wait for in-flight requests when stopping",
	)

	return cobraCommand, nil
}

func (c *ServeCmd) run(cobraCmd *cobra.Command, _ []string) error {
	addr := strings.TrimSpace(c.Addr)
	if err := server.IsValidAddr(addr); err != nil {
		return err
	}

	cfg, console, err := c.LoadConfig(cobraCmd, c.cfgLoader, c.cfgFlags.Overrides(cobraCmd.Flags()))
	if err != nil {
		return err
	}

	var builderOpts []docs.Option
	if c.workDir != "" {
		builderOpts = append(builderOpts, docs.WithWorkDir(c.workDir))
	}

	builder, err := docs.NewBuilder(docs.Dependencies{Logger: console, FS: c.fs}, builderOpts...)
	if err != nil {
		return err
	}

	logger := console.Sink()
	deps, err := server.NewDependencies(logger, &builderRenderer{builder: builder, cfg: cfg}, addr)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(
		deps,
		server.WithCORSAllowOrigins(c.CORSOrigins),
		server.WithCORSMaxAge(c.CORSMaxAge),
		server.WithShutdownTimeout(c.ShutdownTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create preview server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cobraCmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	console.Log(logging.LevelInfo, c.banner(addr))

	if err := srv.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Preview server exited with error", "error", err)
		return err
	}

	console.Log(logging.LevelInfo, "Preview server stopped")
	return nil
}

func (c *ServeCmd) banner(addr string) string {
	prefix := "/api/" + api.APIVersion
	banner := fmt.Sprintf("Serving documentation preview\n\n"+
		"  Document:\thttp://%s%s/document\n"+
		"  Endpoints:\thttp://%s%s/endpoints\n"+
		"  OpenAPI UI:\thttp://%s/docs\n"+
		"  Config file:\t%s\n",
		addr, prefix, addr, prefix, addr, flags.ConfigFile)

	if flags.LogPath != "" {
		banner += fmt.Sprintf("  Log file:\t%s => (%s)\n", flags.LogPath, flags.LogLevel)
	}

	return banner + "\nPress Ctrl+C to stop."
}
