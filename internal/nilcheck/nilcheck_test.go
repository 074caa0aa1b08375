package nilcheck

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type valueWriter struct{}

func (valueWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var nilPtr *valueWriter
	var nilWriter io.Writer
	var typedNil io.Writer = nilPtr

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "untyped nil", value: nil, expected: true},
		{name: "nil interface", value: nilWriter, expected: true},
		{name: "typed nil pointer in interface", value: typedNil, expected: true},
		{name: "nil map", value: map[string]string(nil), expected: true},
		{name: "nil func", value: (func())(nil), expected: true},
		{name: "pointer", value: &valueWriter{}, expected: false},
		{name: "struct value", value: valueWriter{}, expected: false},
		{name: "string", value: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.NotPanics(t, func() {
				require.Equal(t, tc.expected, IsNil(tc.value))
			})
		})
	}
}
