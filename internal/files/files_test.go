package files

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDirName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "bruno-doc", AppDirName())
}

func TestUserSpecificConfigDir(t *testing.T) {
	tests := []struct {
		name        string
		xdgValue    string
		expectedDir func(t *testing.T) string
		expectedErr string
	}{
		{
			name:     "XDG_CONFIG_HOME is set and used",
			xdgValue: "/custom/xdg/path",
			expectedDir: func(t *testing.T) string {
				return filepath.Join("/custom/xdg/path", AppDirName())
			},
		},
		{
			name:     "XDG_CONFIG_HOME is set with whitespace and trimmed",
			xdgValue: "  /trimmed/xdg/path  ",
			expectedDir: func(t *testing.T) string {
				return filepath.Join("/trimmed/xdg/path", AppDirName())
			},
		},
		{
			name:     "XDG_CONFIG_HOME is empty, fall back to default",
			xdgValue: "",
			expectedDir: func(t *testing.T) string {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				return filepath.Join(home, ".config", AppDirName())
			},
		},
		{
			name:        "XDG_CONFIG_HOME is relative",
			xdgValue:    "relative/path",
			expectedErr: "must be an absolute path",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarXDGConfigHome, tc.xdgValue)

			result, err := UserSpecificConfigDir()
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedDir(t), result)
		})
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "present.md")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))

	ok, err := Exists(OS{}, present)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Exists(OS{}, filepath.Join(dir, "missing.md"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "docs", "api.md")

	require.NoError(t, EnsureParentDir(OS{}, target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent when the directory already exists.
	require.NoError(t, EnsureParentDir(OS{}, target))
}

func TestEnsureParentDir_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	err := EnsureParentDir(OS{}, filepath.Join(blocker, "api.md"))
	require.Error(t, err)
}

func TestOS_CreateTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "api.md")
	require.NoError(t, os.WriteFile(path, []byte("previous content"), 0o644))

	w, err := OS{}.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "new")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}
