package strfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Align is the alignment requested by a specifier.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	// AlignInternal pads between the sign (and base prefix) and the digits.
	AlignInternal
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	case AlignInternal:
		return "="
	default:
		return ""
	}
}

// Sign controls how the sign of a number is displayed.
type Sign int

const (
	// SignNegative shows a sign for negative numbers only.
	SignNegative Sign = iota
	// SignAlways shows '+' for non-negative numbers.
	SignAlways
	// SignSpace shows a space for non-negative numbers.
	SignSpace
)

// NoPrecision marks Specifier.Precision as unset.
const NoPrecision = -1

// typeChars are the presentation types accepted as the last specifier character.
const typeChars = "boxXn%fFeEgGd"

// Specifier is the decoded form of the text after ':' in a placeholder, following the
// grammar
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
// A Specifier is a value; renderers never modify it.
type Specifier struct {
	Fill      rune
	Align     Align
	Sign      Sign
	Alternate bool
	Zero      bool
	Width     int
	Thousands bool
	Precision int
	// Type is one of the characters in "boxXn%fFeEgGd", or 0 when absent.
	Type byte
	// Trailing holds any text left over after the type character. It is kept,
	// not rejected.
	Trailing string
}

// HasPrecision reports whether an explicit precision was given.
func (s Specifier) HasPrecision() bool {
	return s.Precision >= 0
}

// IsUpper reports whether the type asks for upper case output.
func (s Specifier) IsUpper() bool {
	return s.Type == 'X' || s.Type == 'F' || s.Type == 'E' || s.Type == 'G'
}

// String renders the specifier back into specifier text. Trailing text is included.
func (s Specifier) String() string {
	var sb strings.Builder
	if s.Fill != 0 && !(s.Zero && s.Fill == '0') {
		sb.WriteRune(s.Fill)
	}
	if !(s.Zero && s.Align == AlignInternal) {
		sb.WriteString(s.Align.String())
	}
	switch s.Sign {
	case SignAlways:
		sb.WriteByte('+')
	case SignSpace:
		sb.WriteByte(' ')
	}
	if s.Alternate {
		sb.WriteByte('#')
	}
	if s.Zero {
		sb.WriteByte('0')
	}
	if s.Width > 0 {
		fmt.Fprintf(&sb, "%d", s.Width)
	}
	if s.Thousands {
		sb.WriteByte(',')
	}
	if s.HasPrecision() {
		fmt.Fprintf(&sb, ".%d", s.Precision)
	}
	if s.Type != 0 {
		sb.WriteByte(s.Type)
	}
	sb.WriteString(s.Trailing)
	return sb.String()
}

// ParseSpecifier decodes specifier text such as "*^+#012,.3f". Errors are
// *SyntaxError values positioned within text.
func ParseSpecifier(text string) (Specifier, error) {
	spec, err := parseSpecifier(text)
	if err != nil {
		err.Template = text
		return spec, err
	}
	return spec, nil
}

func parseSpecifier(text string) (Specifier, *SyntaxError) {
	spec := Specifier{Precision: NoPrecision}
	i := 0

	if len(text) > 0 {
		first, n := utf8.DecodeRuneInString(text)
		second, m := utf8.DecodeRuneInString(text[n:])
		if m > 0 && isAlign(second) {
			spec.Fill = first
			spec.Align = toAlign(second)
			i = n + m
		} else if isAlign(first) {
			spec.Align = toAlign(first)
			i = n
		}
	}

	if i < len(text) {
		switch text[i] {
		case '+':
			spec.Sign = SignAlways
			i++
		case '-':
			spec.Sign = SignNegative
			i++
		case ' ':
			spec.Sign = SignSpace
			i++
		}
	}

	if i < len(text) && text[i] == '#' {
		spec.Alternate = true
		i++
	}

	if i < len(text) && text[i] == '0' {
		spec.Zero = true
		if spec.Fill == 0 {
			spec.Fill = '0'
		}
		if spec.Align == AlignNone {
			spec.Align = AlignInternal
		}
		i++
	}

	width, next, err := parseInteger(text, i, "width")
	if err != nil {
		return spec, err
	}
	if next > i {
		spec.Width = width
		i = next
	}

	if i < len(text) && text[i] == ',' {
		spec.Thousands = true
		i++
	}

	if i < len(text) && text[i] == '.' {
		precision, next, err := parseInteger(text, i+1, "precision")
		if err != nil {
			return spec, err
		}
		if next > i+1 {
			spec.Precision = precision
		}
		i = next
	}

	if i < len(text) && strings.IndexByte(typeChars, text[i]) >= 0 {
		spec.Type = text[i]
		i++
	}

	spec.Trailing = text[i:]
	return spec, nil
}

// parseInteger reads an unsigned decimal integer starting at i. It returns next == i
// when no digits are present. A leading sign, "-0", or a value above MaxInt32 is a
// syntax error; the overflow error points at the digit that overflowed.
func parseInteger(s string, i int, what string) (value, next int, err *SyntaxError) {
	if i < len(s) && (s[i] == '+' || s[i] == '-') && i+1 < len(s) && isDigit(s[i+1]) {
		if s[i] == '-' && s[i+1] == '0' {
			return 0, i, &SyntaxError{Pos: i, Msg: fmt.Sprintf("-0 is not a valid %s", what)}
		}
		return 0, i, &SyntaxError{Pos: i, Msg: fmt.Sprintf("sign not allowed in %s", what)}
	}

	next = i
	for next < len(s) && isDigit(s[next]) {
		value = value*10 + int(s[next]-'0')
		if value > math.MaxInt32 {
			return 0, next, &SyntaxError{Pos: next, Msg: fmt.Sprintf("%s overflows", what)}
		}
		next++
	}
	return value, next, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func toAlign(r rune) Align {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	case '=':
		return AlignInternal
	default:
		return AlignNone
	}
}
