package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/brunodoc/bruno-doc/internal/flags"
	"github.com/brunodoc/bruno-doc/internal/logging"
	"github.com/brunodoc/bruno-doc/internal/perms"
)

// AppName is the name of the binary, used for log names and help text.
const AppName = "bruno-doc"

var version = "dev" // Set at build time using -ldflags

// Version returns the version of the application.
func Version() string {
	return version
}

type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's file logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the file logger for the command.
// The logger is created on first use from the log path and log level flags.
// Without a log path everything is discarded.
func (c *BaseCmd) Logger() (hclog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	var output io.Writer = io.Discard
	logPath := strings.TrimSpace(flags.LogPath)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perms.RegularFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		output = f
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   AppName,
		Level:  logLevel(flags.LogLevel),
		Output: output,
	})

	return c.logger, nil
}

// Console returns a console logger writing to the command's output streams,
// mirroring every message to the file logger.
func (c *BaseCmd) Console(cmd *cobra.Command, opts logging.Options) (*logging.Console, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}

	return logging.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger.Named(cmd.Name()), opts), nil
}

// logLevel converts the log level flag, falling back to info for unknown values.
func logLevel(lvl string) hclog.Level {
	lvl = strings.ToLower(strings.TrimSpace(lvl))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return hclog.LevelFromString(lvl)
	default:
		return hclog.Info
	}
}
