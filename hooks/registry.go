package hooks

import "github.com/rickchristie/strfmt"

// Registry stores hooks in registration order and dispatches each event to the hooks
// that implement the matching interface. A hook may implement any combination of
// strfmt.ParseHook, strfmt.FragmentHook, strfmt.RenderHook and strfmt.ErrorHook.
//
// # Thread Safety
//
// Registry is NOT safe for concurrent registration. Register all hooks before the
// registry is handed to a Formatter. Fire methods only read the hook list, so a
// fully registered Registry may be shared by concurrent Format calls as long as the
// hooks themselves are safe for concurrent use.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook. Hooks are called in the order they are registered.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireParse dispatches a ParseEvent to all registered ParseHook implementations.
func (r *Registry) FireParse(event strfmt.ParseEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(strfmt.ParseHook); ok {
			hook.OnParse(event)
		}
	}
}

// FireFragment dispatches a FragmentEvent to all registered FragmentHook
// implementations.
func (r *Registry) FireFragment(event strfmt.FragmentEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(strfmt.FragmentHook); ok {
			hook.OnFragment(event)
		}
	}
}

// FireRender dispatches a RenderEvent to all registered RenderHook implementations.
func (r *Registry) FireRender(event strfmt.RenderEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(strfmt.RenderHook); ok {
			hook.OnRender(event)
		}
	}
}

// FireError dispatches an ErrorEvent to all registered ErrorHook implementations.
// This is informational only; hooks cannot change the error.
func (r *Registry) FireError(event strfmt.ErrorEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(strfmt.ErrorHook); ok {
			hook.OnError(event)
		}
	}
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *Registry) Clear() {
	r.hooks = make([]any, 0)
}

var _ strfmt.HookDispatcher = (*Registry)(nil)
