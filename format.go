package strfmt

import (
	"os"
	"slices"
	"strings"
	"time"
)

// EnvLookup resolves $NAME placeholders. It has the signature of os.LookupEnv;
// an unset name renders as empty text.
type EnvLookup func(name string) (string, bool)

// Formatter renders templates. Configure it with New and the With methods before
// use; after that Format is safe for concurrent use, provided the registered hooks
// are.
type Formatter struct {
	strict bool
	delims Delimiters
	env    EnvLookup
	hooks  HookDispatcher
	now    func() time.Time
}

// New creates a Formatter from cfg. Values in cfg.Env shadow the process
// environment.
func New(cfg Config) *Formatter {
	f := &Formatter{
		strict: cfg.StrictUnbound,
		delims: cfg.Delimiters,
		env:    os.LookupEnv,
		hooks:  noHooks{},
		now:    time.Now,
	}
	if len(cfg.Env) > 0 {
		f.env = overlayEnv(cfg.Env, os.LookupEnv)
	}
	return f
}

func overlayEnv(values map[string]string, fallback EnvLookup) EnvLookup {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return func(name string) (string, bool) {
		if v, ok := copied[name]; ok {
			return v, true
		}
		return fallback(name)
	}
}

// WithHooks sets the dispatcher that receives parse, fragment, render and error
// events. Passing nil removes it.
func (f *Formatter) WithHooks(h HookDispatcher) *Formatter {
	if h == nil {
		f.hooks = noHooks{}
		return f
	}
	f.hooks = h
	return f
}

// WithEnvLookup replaces the process environment as the source of $NAME values.
func (f *Formatter) WithEnvLookup(lookup EnvLookup) *Formatter {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	f.env = lookup
	return f
}

// Strict reports whether unbound placeholders are errors.
func (f *Formatter) Strict() bool {
	return f.strict
}

// Format renders template with args. Placeholders without an explicit index take
// arguments in order. On error no partial output is returned; the error is a
// *SyntaxError, *ResolutionError or *BindingError.
func (f *Formatter) Format(template string, args ...any) (string, error) {
	start := f.now()
	out, err := f.format(template, args)
	if err != nil {
		f.hooks.FireError(ErrorEvent{Template: template, Err: err})
		return "", err
	}
	f.hooks.FireRender(RenderEvent{
		Template: template,
		Args:     len(args),
		Result:   out,
		Duration: f.now().Sub(start),
	})
	return out, nil
}

func (f *Formatter) format(template string, args []any) (string, error) {
	// Templates without braces render as themselves.
	if strings.IndexAny(template, "{}") < 0 {
		return template, nil
	}

	r := newRenderer(f.delims)
	start := f.now()
	frags, err := newParser(template, f.envHandler(template, r)).run()
	if err != nil {
		return "", err
	}
	f.hooks.FireParse(ParseEvent{
		Template:  template,
		Fragments: slices.Clone(frags),
		Duration:  f.now().Sub(start),
	})

	values := make([]Value, len(args))
	for i, arg := range args {
		values[i] = ValueOf(arg)
	}

	var sb strings.Builder
	for i := range frags {
		frag := &frags[i]
		if frag.Kind == FragmentPlaceholder && !frag.Bound {
			if err := f.bind(template, r, frag, values); err != nil {
				return "", err
			}
			f.hooks.FireFragment(FragmentEvent{Template: template, Index: i, Fragment: *frag})
		}
		sb.WriteString(frag.Text)
	}
	return sb.String(), nil
}

func (f *Formatter) bind(template string, r *renderer, frag *Fragment, values []Value) error {
	index := frag.Ref.Index
	if index >= len(values) {
		if f.strict {
			return &BindingError{Template: template, Pos: frag.Pos, Index: index, Args: len(values)}
		}
		frag.Text = ""
		frag.Bound = true
		return nil
	}

	text, err := renderFragment(r, frag, values[index])
	if err != nil {
		return withTemplate(err, template, frag.Pos)
	}
	frag.Text = text
	frag.Bound = true
	return nil
}

// envHandler renders $NAME placeholders while the template is being parsed.
func (f *Formatter) envHandler(template string, r *renderer) envHandler {
	return func(index int, frag *Fragment) error {
		value, _ := f.env(frag.Ref.Env)
		text, err := renderFragment(r, frag, StringValue(value))
		if err != nil {
			return withTemplate(err, template, frag.Pos)
		}
		frag.Text = text
		frag.Bound = true
		f.hooks.FireFragment(FragmentEvent{Template: template, Index: index, Fragment: *frag})
		return nil
	}
}

func renderFragment(r *renderer, frag *Fragment, v Value) (string, error) {
	resolved, err := resolve(v, frag.Selectors)
	if err != nil {
		return "", err
	}
	return r.value(resolved, frag.Coercion, frag.Spec, frag.SpecText != "")
}

// withTemplate fills in the template, and the position when the error has none, on
// errors raised below the binder.
func withTemplate(err error, template string, pos int) error {
	if re, ok := err.(*ResolutionError); ok {
		re.Template = template
		if re.Pos == 0 {
			re.Pos = pos
		}
		return re
	}
	return &ResolutionError{Template: template, Pos: pos, Msg: "cannot render value", Err: err}
}

var defaultFormatter = New(DefaultConfig())

// Format renders template with args using DefaultConfig.
func Format(template string, args ...any) (string, error) {
	return defaultFormatter.Format(template, args...)
}

// MustFormat is like Format but panics on error.
// Use this for templates that are constants of the program.
func MustFormat(template string, args ...any) string {
	s, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return s
}
