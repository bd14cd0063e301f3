package strfmt

// FragmentKind distinguishes literal text from placeholders.
type FragmentKind int

const (
	FragmentLiteral FragmentKind = iota
	FragmentPlaceholder
)

func (k FragmentKind) String() string {
	if k == FragmentPlaceholder {
		return "placeholder"
	}
	return "literal"
}

// Ref is the target of a placeholder: a positional argument or an environment variable.
type Ref struct {
	Index int
	// Auto is set when the index was assigned from the running counter rather than
	// written in the template.
	Auto  bool
	Env   string
	IsEnv bool
}

// SelectorKind is the syntax a selector was written with.
type SelectorKind int

const (
	// SelectorField is written ".name".
	SelectorField SelectorKind = iota
	// SelectorIndex is written "[name]".
	SelectorIndex
)

// Selector is one narrowing step applied to a bound value.
type Selector struct {
	Kind SelectorKind
	Name string
	Pos  int
}

func (s Selector) String() string {
	if s.Kind == SelectorIndex {
		return "[" + s.Name + "]"
	}
	return "." + s.Name
}

// Coercion is an explicit conversion written as "!s", "!r", "!i" or "!d".
type Coercion byte

const (
	CoerceNone    Coercion = 0
	CoerceString  Coercion = 's'
	CoerceRepr    Coercion = 'r'
	CoerceInt     Coercion = 'i'
	CoerceDecimal Coercion = 'd'
)

func (c Coercion) String() string {
	if c == CoerceNone {
		return ""
	}
	return "!" + string(rune(c))
}

// Fragment is one unit of a parsed template. Literal fragments carry their unescaped
// text; placeholder fragments carry everything needed to render one argument and
// receive their output in Text when bound.
type Fragment struct {
	Kind FragmentKind
	Text string
	// Pos is the byte offset in the template where the fragment starts.
	Pos int

	Ref       Ref
	Selectors []Selector
	Coercion  Coercion
	SpecText  string
	Spec      Specifier
	Bound     bool
}

// IsLiteral reports whether the fragment is literal text.
func (f *Fragment) IsLiteral() bool {
	return f.Kind == FragmentLiteral
}
