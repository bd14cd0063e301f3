package strfmt

import "time"

// -----------------------------------------------------------------------------
// Hook Events
// -----------------------------------------------------------------------------

// ParseEvent is emitted after a template parsed successfully. Environment
// placeholders are already rendered at this point.
type ParseEvent struct {
	Template  string
	Fragments []Fragment
	Duration  time.Duration
}

// FragmentEvent is emitted after a placeholder received its text, in template order.
type FragmentEvent struct {
	Template string
	// Index is the position of the fragment in ParseEvent.Fragments.
	Index    int
	Fragment Fragment
}

// RenderEvent is emitted once per successful Format call.
type RenderEvent struct {
	Template string
	Args     int
	Result   string
	Duration time.Duration
}

// ErrorEvent is emitted when a Format call fails. Err is the error returned to the
// caller.
type ErrorEvent struct {
	Template string
	Err      error
}

// -----------------------------------------------------------------------------
// Hook Interfaces
// -----------------------------------------------------------------------------

// ParseHook observes parsed templates.
type ParseHook interface {
	OnParse(event ParseEvent)
}

// FragmentHook observes each rendered placeholder.
type FragmentHook interface {
	OnFragment(event FragmentEvent)
}

// RenderHook observes completed renders.
type RenderHook interface {
	OnRender(event RenderEvent)
}

// ErrorHook observes failed renders. It cannot change the returned error.
type ErrorHook interface {
	OnError(event ErrorEvent)
}

// HookDispatcher delivers events to hooks. hooks.Registry is the standard
// implementation.
type HookDispatcher interface {
	FireParse(event ParseEvent)
	FireFragment(event FragmentEvent)
	FireRender(event RenderEvent)
	FireError(event ErrorEvent)
}

// noHooks is used when a Formatter has no dispatcher.
type noHooks struct{}

func (noHooks) FireParse(ParseEvent)       {}
func (noHooks) FireFragment(FragmentEvent) {}
func (noHooks) FireRender(RenderEvent)     {}
func (noHooks) FireError(ErrorEvent)       {}
