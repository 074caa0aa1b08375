// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/brunodoc/bruno-doc/internal/errors"
)

var _ Confirmer = (*Terminal)(nil)

// Confirmer asks for the confirmations the build process needs.
type Confirmer interface {
	// ConfirmOverwrite asks whether an existing documentation file may be replaced.
	ConfirmOverwrite(path string) (bool, error)

	// ConfirmSaveConfig asks whether the effective options may be written to the config file.
	ConfirmSaveConfig(path string) (bool, error)
}

// Terminal implements Confirmer by reading answers line by line.
// NewTerminal should be used to create instances of Terminal.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewTerminal creates a Terminal reading from in and writing questions to out.
// When in is an *os.File it must be a terminal, otherwise every question fails with errors.ErrNotInteractive.
// Any other reader is treated as interactive.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

func (t *Terminal) ConfirmOverwrite(path string) (bool, error) {
	return t.confirm(
		fmt.Sprintf("A documentation file already exists at '%s'. "+
			"Do you want to overwrite it and create a new set of documentation?", path),
		true,
	)
}

func (t *Terminal) ConfirmSaveConfig(path string) (bool, error) {
	return t.confirm(
		fmt.Sprintf("Do you want to save these options to '%s' for future use? "+
			"This will overwrite any existing configuration options.", path),
		true,
	)
}

// confirm asks question until a recognisable answer is given.
// An empty answer selects def.
func (t *Terminal) confirm(question string, def bool) (bool, error) {
	if !t.interactive {
		return false, errors.ErrNotInteractive
	}

	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}

	cyan := color.New(color.FgCyan)
	for {
		if _, err := cyan.Fprintf(t.out, "? %s %s ", question, hint); err != nil {
			return false, err
		}

		line, err := t.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if err != nil && (err != io.EOF || answer == "") {
			// Nothing more to read, so there is no answer to act on.
			return false, fmt.Errorf("failed to read answer: %w", err)
		}

		switch answer {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(t.out, "Please answer 'y' or 'n'."); err != nil {
			return false, err
		}
	}
}
