package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/flags"
	"github.com/brunodoc/bruno-doc/internal/logging"
)

func TestBaseCmd_Logger_WritesToLogPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bruno-doc.log")

	flags.LogPath = logPath
	flags.LogLevel = "debug"
	t.Cleanup(func() {
		flags.LogPath = ""
		flags.LogLevel = ""
	})

	c := &BaseCmd{}
	logger, err := c.Logger()
	require.NoError(t, err)
	require.True(t, logger.IsDebug())

	logger.Debug("hello from the test")

	again, err := c.Logger()
	require.NoError(t, err)
	require.Same(t, logger, again)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] bruno-doc: hello from the test")
}

func TestBaseCmd_Logger_InvalidLogPath(t *testing.T) {
	flags.LogPath = filepath.Join(t.TempDir(), "missing", "bruno-doc.log")
	t.Cleanup(func() {
		flags.LogPath = ""
	})

	c := &BaseCmd{}
	_, err := c.Logger()
	require.ErrorContains(t, err, "failed to open log file")
}

func TestBaseCmd_SetLogger(t *testing.T) {
	t.Parallel()

	logger := hclog.NewNullLogger()
	c := &BaseCmd{}
	c.SetLogger(logger)

	got, err := c.Logger()
	require.NoError(t, err)
	require.Same(t, logger, got)
}

func TestBaseCmd_Console(t *testing.T) {
	t.Parallel()

	c := &BaseCmd{}
	c.SetLogger(hclog.NewNullLogger())

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cobraCmd := &cobra.Command{Use: "build"}
	cobraCmd.SetOut(out)
	cobraCmd.SetErr(errOut)

	console, err := c.Console(cobraCmd, logging.Options{Verbose: true})
	require.NoError(t, err)

	console.Log(logging.LevelVerbose, "verbose message")
	console.Log(logging.LevelWarn, "warn message")

	require.Contains(t, out.String(), "verbose message")
	require.NotContains(t, out.String(), "warn message")
	require.Contains(t, errOut.String(), "warn message")
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want hclog.Level
	}{
		{in: "trace", want: hclog.Trace},
		{in: "DEBUG", want: hclog.Debug},
		{in: " warn ", want: hclog.Warn},
		{in: "off", want: hclog.Off},
		{in: "", want: hclog.Info},
		{in: "loud", want: hclog.Info},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, logLevel(tc.in))
		})
	}
}
