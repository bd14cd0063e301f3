// Package strfmt renders templates with Python style replacement fields.
//
// # Quick Start
//
//	s, err := strfmt.Format("{0}, {1:>8.2f}, {0}", "total", 1234.5)
//	// "total,  1234.50, total"
//
// A template is literal text with replacement fields in braces. Doubled braces
// produce a literal brace. Each field has the form
//
//	{[index | $NAME][.field | [key]]...[!conversion][:specifier]}
//
// An index selects a positional argument. Fields without an index take the next
// argument, counting only other fields without an index. $NAME renders the
// environment variable NAME, or empty text when it is unset.
//
// Selectors narrow the argument: .field and [field] pick a sequence element, map
// key, struct field or pair element, or apply one of the numeric transforms abs,
// sign, inc, dec and sqrt. The text inside brackets is an identifier or a number.
//
// The conversions !s and !r render the natural text of the value, !i converts to
// an integer and !d converts to a decimal.
//
// # Specifiers
//
// The specifier grammar is
//
//	[[fill]align][sign][#][0][width][,][.precision][type]
//
// with align one of "<", ">", "^", "=", sign one of "+", "-", " ", and type one of
// "b", "o", "x", "X", "n", "%", "f", "F", "e", "E", "g", "G", "d".
//
// Floats without a precision get a dynamic one: the shortest rendering that shows
// every significant fractional digit, so 2.5 renders as "2.5" and 1e-05 switches to
// scientific notation.
//
// Booleans without a specifier render as "True" and "False". With any specifier
// they render as 0 or 1.
//
// # Values
//
// Arguments are converted once into a [Value]. Slices, arrays and [Sequence]
// implementations render as "[a, b]"; maps, structs and [Mapping] implementations
// render as "{k: v}"; [Pair] renders as "k: v". Each element is formatted with the
// field's specifier. Types implementing [Renderable] format themselves.
//
// # Errors
//
// Errors are *[SyntaxError] for malformed templates, *[ResolutionError] when a
// selector or conversion does not apply to a value, and *[BindingError] when a field
// references a missing argument. They match [ErrSyntax], [ErrResolution] and
// [ErrBinding] with errors.Is. Unbound fields are errors unless
// [Config].StrictUnbound is false, or the module is built with the strfmt_lenient
// tag, in which case they render as empty text.
//
// # Hooks
//
// A [Formatter] accepts a [HookDispatcher], usually a hooks.Registry, to observe
// parse, fragment, render and error events. See loggers.YAMLLogger for a hook that
// traces every event.
package strfmt
