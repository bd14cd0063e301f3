package tt

import (
	"errors"
	"testing"

	"github.com/rickchristie/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MapEnv returns an EnvLookup backed by m.
func MapEnv(m map[string]string) strfmt.EnvLookup {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

// AssertFormat renders template with f and compares the result.
func AssertFormat(t *testing.T, f *strfmt.Formatter, expected, template string, args ...any) {
	t.Helper()
	got, err := f.Format(template, args...)
	require.NoError(t, err, "template %q", template)
	assert.Equal(t, expected, got, "template %q", template)
}

// AssertFormatError renders template with f and checks the error class and the
// template position it reports.
func AssertFormatError(t *testing.T, f *strfmt.Formatter, target error, pos int, template string, args ...any) {
	t.Helper()
	got, err := f.Format(template, args...)
	require.Error(t, err, "template %q rendered %q", template, got)
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, target), "expected %v, got %T: %v", target, err, err)
	assert.Equal(t, pos, ErrorPos(err), "error: %v", err)
}

// ErrorPos extracts the template position from a strfmt error, or -1.
func ErrorPos(err error) int {
	var syn *strfmt.SyntaxError
	if errors.As(err, &syn) {
		return syn.Pos
	}
	var res *strfmt.ResolutionError
	if errors.As(err, &res) {
		return res.Pos
	}
	var bind *strfmt.BindingError
	if errors.As(err, &bind) {
		return bind.Pos
	}
	return -1
}
