package strfmt

import (
	"strings"
	"unicode/utf8"
)

// parts is rendered output split where padding may be inserted.
type parts struct {
	sign   string
	prefix string
	body   string
	suffix string
}

// width counts the runes padding is measured against. The percent suffix is
// written after the body but does not count toward the field width.
func (p parts) width() int {
	return utf8.RuneCountInString(p.sign) + utf8.RuneCountInString(p.prefix) +
		utf8.RuneCountInString(p.body)
}

// assemble pads p to spec.Width. Emission order is left pad, sign, base prefix,
// internal pad, body, percent suffix, right pad. Numbers align right by default,
// text aligns left and treats internal alignment as right.
func assemble(p parts, spec Specifier, numeric bool) string {
	pad := spec.Width - p.width()
	if pad <= 0 {
		return p.sign + p.prefix + p.body + p.suffix
	}

	align := spec.Align
	if align == AlignNone {
		if numeric {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}
	if align == AlignInternal && !numeric {
		align = AlignRight
	}

	var left, internal, right int
	switch align {
	case AlignLeft:
		right = pad
	case AlignCenter:
		left = pad / 2
		right = pad - left
	case AlignInternal:
		internal = pad
	default:
		left = pad
	}

	fill := spec.Fill
	if fill == 0 {
		fill = ' '
	}
	fillText := string(fill)

	var sb strings.Builder
	sb.Grow(len(p.body) + pad*len(fillText) + len(p.sign) + len(p.prefix) + len(p.suffix))
	sb.WriteString(strings.Repeat(fillText, left))
	sb.WriteString(p.sign)
	sb.WriteString(p.prefix)
	sb.WriteString(strings.Repeat(fillText, internal))
	sb.WriteString(p.body)
	sb.WriteString(p.suffix)
	sb.WriteString(strings.Repeat(fillText, right))
	return sb.String()
}
