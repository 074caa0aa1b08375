// Package logging provides the leveled logger used by the documentation pipeline.
//
// Messages go to two places: the console, where they are filtered by the silent,
// verbose and debug options, and an hclog sink (normally a log file) which receives
// everything its own level allows regardless of the console options.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelVerbose
	LevelInfo
	LevelWarn
	LevelError
)

var _ Logger = (*Console)(nil)

// Logger accepts leveled messages. Optional args are key/value pairs as used by hclog.
type Logger interface {
	Log(level Level, msg string, args ...any)
}

// Options controls which levels reach the console.
type Options struct {
	// Silent suppresses all console output below error.
	Silent bool `json:"silent" toml:"silent" yaml:"silent"`

	// Verbose enables verbose console output.
	Verbose bool `json:"verbose" toml:"verbose" yaml:"verbose"`

	// Debug enables debug console output.
	Debug bool `json:"-" toml:"-" yaml:"-"`
}

// Console writes leveled messages to the console and mirrors them to an hclog sink.
// NewConsole should be used to create instances of Console.
type Console struct {
	out    io.Writer
	errOut io.Writer
	sink   hclog.Logger
	opts   Options
}

// NewConsole creates a Console. Info and lower go to out, warn and error go to errOut.
// A nil sink discards the mirrored messages.
func NewConsole(out io.Writer, errOut io.Writer, sink hclog.Logger, opts Options) *Console {
	if sink == nil {
		sink = hclog.NewNullLogger()
	}
	return &Console{
		out:    out,
		errOut: errOut,
		sink:   sink,
		opts:   opts,
	}
}

// WithOptions returns a copy of the Console using the supplied options.
func (c *Console) WithOptions(opts Options) *Console {
	clone := *c
	clone.opts = opts
	return &clone
}

// Options returns the console options currently in effect.
func (c *Console) Options() Options {
	return c.opts
}

// Sink returns the hclog logger that receives mirrored messages.
func (c *Console) Sink() hclog.Logger {
	return c.sink
}

// Enabled reports whether a message at level would be shown on the console.
func (c *Console) Enabled(level Level) bool {
	if level >= LevelError {
		return true
	}
	if c.opts.Silent {
		return false
	}

	switch level {
	case LevelDebug:
		return c.opts.Debug
	case LevelVerbose:
		return c.opts.Verbose || c.opts.Debug
	default:
		return true
	}
}

func (c *Console) Log(level Level, msg string, args ...any) {
	c.sink.Log(level.hclogLevel(), msg, args...)

	if !c.Enabled(level) {
		return
	}

	w := c.out
	if level >= LevelWarn {
		w = c.errOut
	}

	_, _ = fmt.Fprintf(w, "%s %s%s\n", level.prefix(), msg, formatArgs(args))
}

// formatArgs renders hclog style key/value pairs for the console.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&sb, " %v", args[i])
		}
	}
	return sb.String()
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelVerbose:
		return "verbose"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// hclogLevel maps the level onto hclog, which has no 'verbose'.
func (l Level) hclogLevel() hclog.Level {
	switch l {
	case LevelDebug:
		return hclog.Trace
	case LevelVerbose:
		return hclog.Debug
	case LevelWarn:
		return hclog.Warn
	case LevelError:
		return hclog.Error
	default:
		return hclog.Info
	}
}

// prefix renders the padded, coloured level label.
// Colours are disabled automatically when the output is not a TTY.
func (l Level) prefix() string {
	label := fmt.Sprintf("%-8s", l.String()+":")

	switch l {
	case LevelDebug:
		return color.BlueString(label)
	case LevelVerbose:
		return color.CyanString(label)
	case LevelWarn:
		return color.YellowString(label)
	case LevelError:
		return color.RedString(label)
	default:
		return color.GreenString(label)
	}
}

// Discard returns a Logger that drops every message.
func Discard() Logger {
	return NewConsole(io.Discard, io.Discard, nil, Options{Silent: true})
}
