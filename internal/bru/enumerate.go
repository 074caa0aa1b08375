package bru

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brunodoc/bruno-doc/internal/errors"
	"github.com/brunodoc/bruno-doc/internal/files"
)

// Enumerate returns the absolute paths of all .bru files below root.
//
// The walk is depth-first; a sub-directory's files appear at the position of the
// sub-directory itself. Entries of each directory are visited in lexical order.
// A missing or unreadable root fails with errors.ErrSourcePathNotFound.
func Enumerate(fsys files.Reader, root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrSourcePathNotFound, root, err)
	}

	all, err := walk(fsys, abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSourcePathNotFound, err)
	}

	matched := make([]string, 0, len(all))
	for _, p := range all {
		if strings.HasSuffix(p, Extension) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// walk lists every non-directory entry below dir, recursing into sub-directories.
func walk(fsys files.Reader, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			nested, err := walk(fsys, p)
			if err != nil {
				return nil, err
			}
			paths = append(paths, nested...)
			continue
		}
		paths = append(paths, p)
	}

	return paths, nil
}
