// Package tt provides test helpers shared by the strfmt packages.
package tt

import (
	"sync"

	"github.com/rickchristie/strfmt"
)

// Recorder is a hook that records every event it receives, in order.
type Recorder struct {
	mu     sync.Mutex
	events []any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(event any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) OnParse(event strfmt.ParseEvent)       { r.record(event) }
func (r *Recorder) OnFragment(event strfmt.FragmentEvent) { r.record(event) }
func (r *Recorder) OnRender(event strfmt.RenderEvent)     { r.record(event) }
func (r *Recorder) OnError(event strfmt.ErrorEvent)       { r.record(event) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.events...)
}

// Names returns the recorded event type names, e.g. "parse", "fragment".
func (r *Recorder) Names() []string {
	events := r.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = EventName(e)
	}
	return names
}

// Fragments returns the recorded fragment events.
func (r *Recorder) Fragments() []strfmt.FragmentEvent {
	var out []strfmt.FragmentEvent
	for _, e := range r.Events() {
		if fe, ok := e.(strfmt.FragmentEvent); ok {
			out = append(out, fe)
		}
	}
	return out
}

// EventName returns a short name for a hook event.
func EventName(event any) string {
	switch event.(type) {
	case strfmt.ParseEvent:
		return "parse"
	case strfmt.FragmentEvent:
		return "fragment"
	case strfmt.RenderEvent:
		return "render"
	case strfmt.ErrorEvent:
		return "error"
	default:
		return "unknown"
	}
}

var (
	_ strfmt.ParseHook    = (*Recorder)(nil)
	_ strfmt.FragmentHook = (*Recorder)(nil)
	_ strfmt.RenderHook   = (*Recorder)(nil)
	_ strfmt.ErrorHook    = (*Recorder)(nil)
)
