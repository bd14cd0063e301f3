package strfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecifier(t *testing.T) {
	type input struct {
		text string
	}

	type expected struct {
		spec Specifier
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "empty",
			input:    input{text: ""},
			expected: expected{spec: Specifier{Precision: NoPrecision}},
		},
		{
			name:  "align only",
			input: input{text: "<"},
			expected: expected{spec: Specifier{
				Align: AlignLeft, Precision: NoPrecision,
			}},
		},
		{
			name:  "fill and align",
			input: input{text: "*^"},
			expected: expected{spec: Specifier{
				Fill: '*', Align: AlignCenter, Precision: NoPrecision,
			}},
		},
		{
			name:  "multibyte fill",
			input: input{text: "é>8"},
			expected: expected{spec: Specifier{
				Fill: 'é', Align: AlignRight, Width: 8, Precision: NoPrecision,
			}},
		},
		{
			name:  "align character used as fill",
			input: input{text: "<<"},
			expected: expected{spec: Specifier{
				Fill: '<', Align: AlignLeft, Precision: NoPrecision,
			}},
		},
		{
			name:  "zero flag sets fill and internal align",
			input: input{text: "05"},
			expected: expected{spec: Specifier{
				Fill: '0', Align: AlignInternal, Zero: true, Width: 5, Precision: NoPrecision,
			}},
		},
		{
			name:  "zero flag keeps explicit align",
			input: input{text: "<05"},
			expected: expected{spec: Specifier{
				Fill: '0', Align: AlignLeft, Zero: true, Width: 5, Precision: NoPrecision,
			}},
		},
		{
			name:  "zero flag keeps explicit fill",
			input: input{text: "x^05"},
			expected: expected{spec: Specifier{
				Fill: 'x', Align: AlignCenter, Zero: true, Width: 5, Precision: NoPrecision,
			}},
		},
		{
			name:  "every field",
			input: input{text: "*=+#012,.3f"},
			expected: expected{spec: Specifier{
				Fill: '*', Align: AlignInternal, Sign: SignAlways, Alternate: true, Zero: true,
				Width: 12, Thousands: true, Precision: 3, Type: 'f',
			}},
		},
		{
			name:  "space sign",
			input: input{text: " d"},
			expected: expected{spec: Specifier{
				Sign: SignSpace, Precision: NoPrecision, Type: 'd',
			}},
		},
		{
			name:  "minus sign",
			input: input{text: "-5"},
			expected: expected{spec: Specifier{
				Sign: SignNegative, Width: 5, Precision: NoPrecision,
			}},
		},
		{
			name:  "dot without digits leaves precision unset",
			input: input{text: ".f"},
			expected: expected{spec: Specifier{
				Precision: NoPrecision, Type: 'f',
			}},
		},
		{
			name:     "zero precision",
			input:    input{text: ".0"},
			expected: expected{spec: Specifier{Precision: 0}},
		},
		{
			name:     "percent type",
			input:    input{text: ".1%"},
			expected: expected{spec: Specifier{Precision: 1, Type: '%'}},
		},
		{
			name:  "unknown type kept as trailing",
			input: input{text: "5q"},
			expected: expected{spec: Specifier{
				Width: 5, Precision: NoPrecision, Trailing: "q",
			}},
		},
		{
			name:  "text after type kept as trailing",
			input: input{text: "xyz"},
			expected: expected{spec: Specifier{
				Precision: NoPrecision, Type: 'x', Trailing: "yz",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecifier(tt.input.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.spec, spec)
		})
	}
}

func TestParseSpecifier_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		msg  string
	}{
		{name: "negative zero width", text: "+-05", pos: 1, msg: "-0 is not a valid width"},
		{name: "negative precision", text: ".-3", pos: 1, msg: "sign not allowed in precision"},
		{name: "width overflow", text: "99999999999", pos: 9, msg: "width overflows"},
		{name: "precision overflow", text: ".2147483648", pos: 10, msg: "precision overflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecifier(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.pos, se.Pos)
			assert.Equal(t, tt.msg, se.Msg)
			assert.Equal(t, tt.text, se.Template)
		})
	}
}

func TestParseSpecifier_MaxWidth(t *testing.T) {
	spec, err := ParseSpecifier("2147483647")
	require.NoError(t, err)
	assert.Equal(t, 2147483647, spec.Width)
}

func TestSpecifier_String(t *testing.T) {
	for _, text := range []string{
		"",
		"<",
		"*^10",
		"+#x",
		"08.3f",
		",d",
		" e",
		"<+010,.2%",
		"5q",
	} {
		t.Run(text, func(t *testing.T) {
			spec, err := ParseSpecifier(text)
			require.NoError(t, err)
			assert.Equal(t, text, spec.String())
		})
	}
}

func TestSpecifier_IsUpper(t *testing.T) {
	for _, c := range []byte("XFEG") {
		assert.True(t, Specifier{Type: c}.IsUpper(), string(c))
	}
	for _, c := range []byte("xfegbodn%") {
		assert.False(t, Specifier{Type: c}.IsUpper(), string(c))
	}
}
