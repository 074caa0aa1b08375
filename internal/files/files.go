package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brunodoc/bruno-doc/internal/perms"
)

// EnvVarXDGConfigHome is the XDG Base Directory env var name for config files.
const EnvVarXDGConfigHome = "XDG_CONFIG_HOME"

var _ System = (*OS)(nil)

// Reader is the read-only part of System, used while scanning a collection.
type Reader interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Stat(name string) (fs.FileInfo, error)
}

// System is the file system capability used by the documentation builder.
// Production code uses OS, tests may substitute their own implementation.
type System interface {
	Reader
	Remove(name string) error
	MkdirAll(path string, perm os.FileMode) error
	Create(name string) (io.WriteCloser, error)
}

// OS implements System on top of the host file system.
type OS struct{}

func (OS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (OS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OS) Remove(name string) error { return os.Remove(name) }

func (OS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// Create truncates or creates the named file for writing only.
func (OS) Create(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perms.RegularFile)
}

// AppDirName returns the name of the application directory for use in user-specific operations.
func AppDirName() string {
	return "bruno-doc"
}

// Exists reports whether the named path exists.
// Errors other than 'not exist' are returned to the caller.
func Exists(fsys Reader, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// EnsureParentDir creates the parent directory of path (and any antecedents) when missing.
func EnsureParentDir(fsys System, path string) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, perms.RegularDir); err != nil {
		return fmt.Errorf("could not ensure directory exists for '%s': %w", dir, err)
	}

	info, err := fsys.Stat(dir)
	if err != nil {
		return fmt.Errorf("could not stat directory '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path '%s' is not a directory", dir)
	}

	return nil
}

// UserSpecificConfigDir returns the directory that should be used to store any user-specific configuration.
// It adheres to the XDG Base Directory Specification, respecting the XDG_CONFIG_HOME environment variable.
// When XDG_CONFIG_HOME is not set, it defaults to ~/.config/bruno-doc
// See: https://specifications.freedesktop.org/basedir-spec/latest/
func UserSpecificConfigDir() (string, error) {
	// If the relevant environment variable is present and configured, then use it.
	if ch, ok := os.LookupEnv(EnvVarXDGConfigHome); ok && strings.TrimSpace(ch) != "" {
		home := strings.TrimSpace(ch)
		if filepath.IsAbs(home) {
			return filepath.Join(home, AppDirName()), nil
		}

		return "", fmt.Errorf(
			"environment variable '%s' must be an absolute path, got: %s",
			EnvVarXDGConfigHome,
			home,
		)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", AppDirName()), nil
}
