package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	type input struct {
		raw map[string]any
	}

	type expected struct {
		isNil  bool
		hasErr bool
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "nil schema returns nil",
			input:    input{raw: nil},
			expected: expected{isNil: true},
		},
		{
			name: "builder output compiles",
			input: input{
				raw: Object(map[string]*Property{
					"name": String("Name").MaxLength(8),
				}, "name"),
			},
			expected: expected{isNil: false},
		},
		{
			name:     "invalid type keyword fails",
			input:    input{raw: map[string]any{"type": 12}},
			expected: expected{isNil: true, hasErr: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compile(tt.input.raw)

			if tt.expected.hasErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expected.isNil {
				assert.Nil(t, s)
			} else {
				require.NotNil(t, s)
				assert.Equal(t, tt.input.raw, s.Raw())
			}
		})
	}
}

func TestSchema_Validate(t *testing.T) {
	s := MustCompile(Object(map[string]*Property{
		"name":    String("Display name").MaxLength(4),
		"verbose": Boolean("Trace events").Default(false),
		"mode":    String("Mode").Enum("strict", "lenient"),
		"args":    Array("Arguments", map[string]any{}),
		"any":     Any("Anything"),
		"env": StringMap("Overrides").
			KeyPattern(`^[A-Z_]+$`),
		"nested": Nested("Nested object", map[string]*Property{
			"open": String("Opening text"),
		}),
	}, "name"))

	type input struct {
		data map[string]any
	}

	type expected struct {
		hasErr bool
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name: "valid document passes",
			input: input{data: map[string]any{
				"name":    "abc",
				"verbose": true,
				"mode":    "strict",
				"args":    []any{1, "two", 3.5},
				"any":     map[string]any{"x": 1},
				"env":     map[string]any{"HOME": "/root"},
				"nested":  map[string]any{"open": "["},
			}},
			expected: expected{hasErr: false},
		},
		{
			name:     "missing required field fails",
			input:    input{data: map[string]any{}},
			expected: expected{hasErr: true},
		},
		{
			name:     "unknown property fails",
			input:    input{data: map[string]any{"name": "a", "nmae": "b"}},
			expected: expected{hasErr: true},
		},
		{
			name:     "string too long fails",
			input:    input{data: map[string]any{"name": "abcdef"}},
			expected: expected{hasErr: true},
		},
		{
			name:     "value outside enum fails",
			input:    input{data: map[string]any{"name": "a", "mode": "loose"}},
			expected: expected{hasErr: true},
		},
		{
			name:     "wrong type fails",
			input:    input{data: map[string]any{"name": "a", "verbose": "yes"}},
			expected: expected{hasErr: true},
		},
		{
			name:     "non-string map value fails",
			input:    input{data: map[string]any{"name": "a", "env": map[string]any{"HOME": 1}}},
			expected: expected{hasErr: true},
		},
		{
			name:     "map key outside pattern fails",
			input:    input{data: map[string]any{"name": "a", "env": map[string]any{"home": "x"}}},
			expected: expected{hasErr: true},
		},
		{
			name:     "unknown nested property fails",
			input:    input{data: map[string]any{"name": "a", "nested": map[string]any{"close": "]"}}},
			expected: expected{hasErr: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate(tt.input.data)

			if tt.expected.hasErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
				assert.NotNil(t, verr.Unwrap())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchema_Validate_NilSchema(t *testing.T) {
	var s *Schema
	assert.NoError(t, s.Validate(map[string]any{"foo": "bar"}))
	assert.Nil(t, s.Raw())
}

func TestMustCompile_PanicsOnInvalidSchema(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(map[string]any{"type": 12})
	})
	assert.NotPanics(t, func() {
		MustCompile(map[string]any{"type": "object"})
	})
}
