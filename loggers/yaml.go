// Package loggers provides hooks that trace formatter events.
package loggers

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rickchristie/strfmt"
	"gopkg.in/yaml.v3"
)

// YAMLLogger implements every hook interface and writes each event as a timestamped
// header followed by a YAML document. Nothing is truncated.
type YAMLLogger struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewYAMLLogger creates a YAMLLogger that writes to stderr.
func NewYAMLLogger() *YAMLLogger {
	return NewYAMLLoggerWithWriter(os.Stderr)
}

// NewYAMLLoggerWithWriter creates a YAMLLogger that writes to w.
func NewYAMLLoggerWithWriter(w io.Writer) *YAMLLogger {
	return &YAMLLogger{
		out: w,
		now: time.Now,
	}
}

// WithClock replaces the clock used for event headers.
func (h *YAMLLogger) WithClock(now func() time.Time) *YAMLLogger {
	h.now = now
	return h
}

type fragmentView struct {
	Kind      string   `yaml:"kind"`
	Pos       int      `yaml:"pos"`
	Index     *int     `yaml:"index,omitempty"`
	Env       string   `yaml:"env,omitempty"`
	Selectors []string `yaml:"selectors,omitempty"`
	Coercion  string   `yaml:"coercion,omitempty"`
	Spec      string   `yaml:"spec,omitempty"`
	Text      string   `yaml:"text,omitempty"`
}

func viewOf(frag strfmt.Fragment) fragmentView {
	v := fragmentView{
		Kind: frag.Kind.String(),
		Pos:  frag.Pos,
		Text: frag.Text,
	}
	if frag.IsLiteral() {
		return v
	}
	if frag.Ref.IsEnv {
		v.Env = frag.Ref.Env
	} else {
		index := frag.Ref.Index
		v.Index = &index
	}
	for _, s := range frag.Selectors {
		v.Selectors = append(v.Selectors, s.String())
	}
	v.Coercion = frag.Coercion.String()
	v.Spec = frag.SpecText
	return v
}

// OnParse logs the template and its fragments.
func (h *YAMLLogger) OnParse(event strfmt.ParseEvent) {
	views := make([]fragmentView, len(event.Fragments))
	for i, frag := range event.Fragments {
		views[i] = viewOf(frag)
	}
	h.write("Parse", struct {
		Template  string         `yaml:"template"`
		Fragments []fragmentView `yaml:"fragments"`
		Duration  string         `yaml:"duration"`
	}{event.Template, views, event.Duration.String()})
}

// OnFragment logs one rendered placeholder.
func (h *YAMLLogger) OnFragment(event strfmt.FragmentEvent) {
	h.write("Fragment", struct {
		Index    int          `yaml:"index"`
		Fragment fragmentView `yaml:"fragment"`
	}{event.Index, viewOf(event.Fragment)})
}

// OnRender logs the final output.
func (h *YAMLLogger) OnRender(event strfmt.RenderEvent) {
	h.write("Render", struct {
		Template string `yaml:"template"`
		Args     int    `yaml:"args"`
		Result   string `yaml:"result"`
		Duration string `yaml:"duration"`
	}{event.Template, event.Args, event.Result, event.Duration.String()})
}

// OnError logs a failed render, with a caret diagnostic when the error has one.
func (h *YAMLLogger) OnError(event strfmt.ErrorEvent) {
	entry := struct {
		Template string `yaml:"template"`
		Error    string `yaml:"error"`
		Detail   string `yaml:"detail,omitempty"`
	}{Template: event.Template, Error: event.Err.Error()}
	if d, ok := event.Err.(interface{ Detail() string }); ok {
		entry.Detail = d.Detail()
	}
	h.write("Error", entry)
}

func (h *YAMLLogger) write(name string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logEvent(name)
	h.logYAML(v)
}

// logEvent logs an event header with timestamp.
func (h *YAMLLogger) logEvent(name string) {
	timestamp := h.now().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", name, timestamp)
}

func (h *YAMLLogger) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(h.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

var (
	_ strfmt.ParseHook    = (*YAMLLogger)(nil)
	_ strfmt.FragmentHook = (*YAMLLogger)(nil)
	_ strfmt.RenderHook   = (*YAMLLogger)(nil)
	_ strfmt.ErrorHook    = (*YAMLLogger)(nil)
)
