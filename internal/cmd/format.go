package cmd

import (
	"fmt"
	"slices"
	"strings"
)

// OutputFormat represents an enum for the formats command output can be rendered in.
type OutputFormat string

// OutputFormats is a wrapper which allows 'helper' receivers to be declared,
// such as String().
type OutputFormats []OutputFormat

const (
	FormatJSON OutputFormat = "json"
	FormatTOML OutputFormat = "toml"
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
)

// AllowedOutputFormats returns the formats supported when listing endpoints.
func AllowedOutputFormats() OutputFormats {
	formats := OutputFormats{
		FormatJSON,
		FormatText,
		FormatYAML,
	}

	slices.Sort(formats)

	return formats
}

// AllowedConfigFormats returns the formats supported when showing configuration.
func AllowedConfigFormats() OutputFormats {
	formats := OutputFormats{
		FormatJSON,
		FormatTOML,
		FormatYAML,
	}

	slices.Sort(formats)

	return formats
}

// String implements fmt.Stringer for a collection of output formats,
// converting them to a comma separated string.
func (f OutputFormats) String() string {
	ofs := f
	out := make([]string, len(ofs))
	for i := range ofs {
		out[i] = ofs[i].String()
	}
	return strings.Join(out, ", ")
}

// String implements fmt.Stringer for an output format.
func (f OutputFormat) String() string {
	return strings.ToLower(string(f))
}

// FormatFlag is a Cobra flag value restricted to a set of allowed output formats.
// NewFormatFlag should be used to create instances of FormatFlag.
type FormatFlag struct {
	value   OutputFormat
	allowed OutputFormats
}

// NewFormatFlag creates a FormatFlag with a default value and the formats it accepts.
func NewFormatFlag(def OutputFormat, allowed OutputFormats) *FormatFlag {
	return &FormatFlag{
		value:   def,
		allowed: allowed,
	}
}

// Value returns the selected format.
func (f *FormatFlag) Value() OutputFormat {
	return f.value
}

// String is required by Cobra as part of implementing flag.Value.
func (f *FormatFlag) String() string {
	return f.value.String()
}

// Set is used by Cobra to set the format value from a string.
// This is also required by Cobra as part of implementing flag.Value.
func (f *FormatFlag) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))

	for _, a := range f.allowed {
		if string(a) == v {
			f.value = a
			return nil
		}
	}

	return fmt.Errorf("invalid format '%s', must be one of %v", v, f.allowed.String())
}

// Type is used by Cobra to get the 'type' of the flag for display purposes.
// This is also required by Cobra as part of implementing flag.Value.
func (f *FormatFlag) Type() string {
	return "format"
}
