// Package hooks provides a registry that dispatches formatter events to hooks.
//
// Hooks observe template rendering. Each hook interface corresponds to one event
// type; implement only the interfaces you need:
//   - [strfmt.ParseHook] - called after a template parsed
//   - [strfmt.FragmentHook] - called after each placeholder is rendered
//   - [strfmt.RenderHook] - called after a successful Format call
//   - [strfmt.ErrorHook] - called when Format fails
//
// # Creating a Hook
//
//	type CountingHook struct{ renders int }
//
//	func (h *CountingHook) OnRender(event strfmt.RenderEvent) {
//	    h.renders++
//	}
//
//	// Compile-time check
//	var _ strfmt.RenderHook = (*CountingHook)(nil)
//
// # Registering Hooks
//
//	registry := hooks.NewRegistry().
//	    Register(&CountingHook{}).
//	    Register(loggers.NewYAMLLogger())
//
//	f := strfmt.New(strfmt.DefaultConfig()).WithHooks(registry)
//
// See loggers/yaml.go for a hook that implements every interface.
package hooks
