package strfmt

import (
	"fmt"
	"strings"
)

// Parse splits a template into fragments without binding any arguments.
// Environment placeholders are returned unbound, with Ref.IsEnv set.
func Parse(template string) ([]Fragment, error) {
	frags, err := newParser(template, nil).run()
	if err != nil {
		return nil, err
	}
	return frags, nil
}

// envHandler renders an environment placeholder as soon as it is parsed.
type envHandler func(index int, frag *Fragment) error

type parser struct {
	template string
	pos      int
	auto     int
	frags    []Fragment
	onEnv    envHandler
}

func newParser(template string, onEnv envHandler) *parser {
	return &parser{
		template: template,
		onEnv:    onEnv,
	}
}

func (p *parser) run() ([]Fragment, error) {
	for p.pos < len(p.template) {
		opened, err := p.literal()
		if err != nil {
			return nil, err
		}
		if opened {
			if err := p.placeholder(); err != nil {
				return nil, err
			}
		}
	}
	return p.frags, nil
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &SyntaxError{Template: p.template, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// literal consumes text up to the next lone '{', unescaping doubled braces.
// opened reports whether it stopped on a '{', in which case p.pos is just past it.
func (p *parser) literal() (opened bool, err error) {
	start := p.pos
	var sb strings.Builder
	for p.pos < len(p.template) {
		c := p.template[p.pos]
		switch c {
		case '{':
			if p.peek(1) == '{' {
				sb.WriteByte('{')
				p.pos += 2
				continue
			}
			p.emitLiteral(start, sb.String())
			p.pos++
			return true, nil
		case '}':
			if p.peek(1) != '}' {
				return false, p.errorf(p.pos, "unexpected '}'")
			}
			sb.WriteByte('}')
			p.pos += 2
		default:
			next := strings.IndexAny(p.template[p.pos:], "{}")
			if next < 0 {
				next = len(p.template) - p.pos
			}
			sb.WriteString(p.template[p.pos : p.pos+next])
			p.pos += next
		}
	}
	p.emitLiteral(start, sb.String())
	return false, nil
}

func (p *parser) emitLiteral(pos int, text string) {
	if text == "" {
		return
	}
	p.frags = append(p.frags, Fragment{Kind: FragmentLiteral, Text: text, Pos: pos})
}

func (p *parser) peek(offset int) byte {
	if p.pos+offset < len(p.template) {
		return p.template[p.pos+offset]
	}
	return 0
}

func (p *parser) skipSpace() {
	for p.pos < len(p.template) {
		switch p.template[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// placeholder parses everything after an opening '{' up to and including the
// closing '}'.
func (p *parser) placeholder() error {
	frag := Fragment{Kind: FragmentPlaceholder, Pos: p.pos - 1}
	p.skipSpace()

	if p.peek(0) == '$' {
		p.pos++
		name := p.identifier()
		if name == "" {
			return p.errorf(p.pos, "expected environment variable name after '$'")
		}
		frag.Ref = Ref{Env: name, IsEnv: true}
	} else {
		index, next, err := parseInteger(p.template, p.pos, "argument index")
		if err != nil {
			err.Template = p.template
			return err
		}
		if next > p.pos {
			frag.Ref = Ref{Index: index}
			p.pos = next
		} else {
			frag.Ref = Ref{Index: p.auto, Auto: true}
			p.auto++
		}
	}

	if err := p.selectors(&frag); err != nil {
		return err
	}

	if p.peek(0) == '!' {
		p.pos++
		if p.pos >= len(p.template) {
			return p.errorf(p.pos, "missing conversion after '!'")
		}
		switch c := Coercion(p.template[p.pos]); c {
		case CoerceString, CoerceRepr, CoerceInt, CoerceDecimal:
			frag.Coercion = c
			p.pos++
		default:
			return p.errorf(p.pos, "invalid conversion %q", p.template[p.pos])
		}
	}

	if p.peek(0) == ':' {
		p.pos++
		if err := p.specifier(&frag); err != nil {
			return err
		}
	} else {
		p.skipSpace()
		if p.pos >= len(p.template) {
			return p.errorf(frag.Pos, "missing '}'")
		}
		if p.template[p.pos] != '}' {
			return p.errorf(p.pos, "unexpected %q in placeholder", p.template[p.pos])
		}
		p.pos++
		frag.Spec = Specifier{Precision: NoPrecision}
	}

	p.frags = append(p.frags, frag)
	if frag.Ref.IsEnv && p.onEnv != nil {
		index := len(p.frags) - 1
		return p.onEnv(index, &p.frags[index])
	}
	return nil
}

func (p *parser) selectors(frag *Fragment) error {
	for p.pos < len(p.template) {
		switch p.template[p.pos] {
		case '.':
			pos := p.pos
			p.pos++
			name := p.identifier()
			if name == "" {
				return p.errorf(p.pos, "expected field name after '.'")
			}
			frag.Selectors = append(frag.Selectors, Selector{Kind: SelectorField, Name: name, Pos: pos})
		case '[':
			pos := p.pos
			p.pos++
			name := p.identifier()
			switch c := p.peek(0); {
			case c == ']':
			case p.pos >= len(p.template) || c == '{' || c == '}':
				return p.errorf(pos, "missing ']'")
			default:
				return p.errorf(p.pos, "unexpected %q in index", c)
			}
			if name == "" {
				return p.errorf(p.pos, "empty index")
			}
			p.pos++
			frag.Selectors = append(frag.Selectors, Selector{Kind: SelectorIndex, Name: name, Pos: pos})
		default:
			return nil
		}
	}
	return nil
}

func (p *parser) identifier() string {
	start := p.pos
	for p.pos < len(p.template) && isIdentByte(p.template[p.pos]) {
		p.pos++
	}
	return p.template[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// specifier reads raw specifier text up to the closing '}' and decodes it. offsets
// maps each byte of the unescaped text back to the template, so decoder errors
// point into the template.
func (p *parser) specifier(frag *Fragment) error {
	var sb strings.Builder
	var offsets []int
	for {
		if p.pos >= len(p.template) {
			return p.errorf(frag.Pos, "missing '}'")
		}
		c := p.template[p.pos]
		if c == '{' || c == '}' {
			if p.peek(1) == c {
				sb.WriteByte(c)
				offsets = append(offsets, p.pos)
				p.pos += 2
				continue
			}
			if c == '{' {
				return p.errorf(p.pos, "unexpected '{' in format specifier")
			}
			break
		}
		sb.WriteByte(c)
		offsets = append(offsets, p.pos)
		p.pos++
	}
	end := p.pos
	p.pos++

	frag.SpecText = sb.String()
	spec, err := parseSpecifier(frag.SpecText)
	if err != nil {
		err.Template = p.template
		if err.Pos < len(offsets) {
			err.Pos = offsets[err.Pos]
		} else {
			err.Pos = end
		}
		return err
	}
	frag.Spec = spec
	return nil
}
