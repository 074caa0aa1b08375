package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brunodoc/bruno-doc/internal/cmd"
	cmdopts "github.com/brunodoc/bruno-doc/internal/cmd/options"
	"github.com/brunodoc/bruno-doc/internal/config"
	"github.com/brunodoc/bruno-doc/internal/flags"
)

type mockInitializer struct {
	path  string
	force bool
	err   error
}

func (m *mockInitializer) Init(path string, force bool) error {
	m.path = path
	m.force = force
	return m.err
}

func TestInitCmd_CreatesConfig(t *testing.T) {
	dir := setupProject(t, nil, "")

	c, err := NewInitCmd(&cmd.BaseCmd{})
	require.NoError(t, err)

	stdout, _, err := execute(t, c)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, flags.DefaultConfigFile)
	require.Contains(t, stdout, "🚀 Initializing bruno-doc project at: "+cfgPath)
	require.Contains(t, stdout, "✅ Config file created: "+cfgPath)

	cfg, err := (&config.DefaultLoader{}).Load(cfgPath)
	require.NoError(t, err)
	require.True(t, cfg.Equal(config.Defaults()))
}

func TestInitCmd_ExistingConfig(t *testing.T) {
	dir := setupProject(t, nil, testConfig)
	cfgPath := filepath.Join(dir, flags.DefaultConfigFile)

	c, err := NewInitCmd(&cmd.BaseCmd{})
	require.NoError(t, err)

	_, _, err = execute(t, c)
	require.ErrorIs(t, err, config.ErrConfigExists)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Equal(t, testConfig, string(data))

	c, err = NewInitCmd(&cmd.BaseCmd{})
	require.NoError(t, err)

	_, _, err = execute(t, c, "--force")
	require.NoError(t, err)

	cfg, err := (&config.DefaultLoader{}).Load(cfgPath)
	require.NoError(t, err)
	require.True(t, cfg.Equal(config.Defaults()))
}

func TestInitCmd_RelativePathUsesWorkDir(t *testing.T) {
	dir := t.TempDir()
	initializer := &mockInitializer{}

	previousConfigFile := flags.ConfigFile
	t.Cleanup(func() { flags.ConfigFile = previousConfigFile })
	flags.ConfigFile = "docs.toml"

	c, err := NewInitCmd(
		&cmd.BaseCmd{},
		cmdopts.WithConfigInitializer(initializer),
		cmdopts.WithWorkDir(dir),
	)
	require.NoError(t, err)

	_, _, err = execute(t, c, "-f")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "docs.toml"), initializer.path)
	require.True(t, initializer.force)
}

func TestInitCmd_InitializerError(t *testing.T) {
	setupProject(t, nil, "")

	c, err := NewInitCmd(&cmd.BaseCmd{}, cmdopts.WithConfigInitializer(&mockInitializer{err: os.ErrPermission}))
	require.NoError(t, err)

	stdout, _, err := execute(t, c)
	require.ErrorIs(t, err, os.ErrPermission)
	require.ErrorContains(t, err, "error initializing bruno-doc project")
	require.NotContains(t, stdout, "✅")
}
