package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/flags"
)

const testConfig = `source = "Collections"
destination = "documentation/api.md"
excludes = ["collections.bru"]
`

// fakeConfirmer answers every question with answer and counts the questions asked.
type fakeConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (f *fakeConfirmer) ConfirmOverwrite(_ string) (bool, error) {
	f.asked++
	return f.answer, f.err
}

func (f *fakeConfirmer) ConfirmSaveConfig(_ string) (bool, error) {
	f.asked++
	return f.answer, f.err
}

// setupProject creates a project directory holding tree and a config file with cfgContent.
// The config file flag points at the new file until the test ends.
func setupProject(t *testing.T, tree map[string]string, cfgContent string) string {
	t.Helper()

	dir := t.TempDir()
	writeTree(t, dir, tree)

	cfgPath := filepath.Join(dir, flags.DefaultConfigFile)
	if cfgContent != "" {
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))
	}

	previousConfigFile := flags.ConfigFile
	t.Cleanup(func() { flags.ConfigFile = previousConfigFile })
	flags.ConfigFile = cfgPath

	return dir
}

// writeTree creates the files in tree below dir, keyed by slash separated relative path.
func writeTree(t *testing.T, dir string, tree map[string]string) {
	t.Helper()

	for name, content := range tree {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// execute runs the command with args, returning stdout and stderr.
// Usage output is silenced the way the root command does it.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	c.SilenceUsage = true

	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)

	err := c.Execute()
	return stdout.String(), stderr.String(), err
}
