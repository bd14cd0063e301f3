package hooks

import (
	"errors"
	"testing"

	"github.com/rickchristie/strfmt"
	"github.com/rickchristie/strfmt/internal/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorOnly implements a single hook interface.
type errorOnly struct {
	errs []error
}

func (h *errorOnly) OnError(event strfmt.ErrorEvent) {
	h.errs = append(h.errs, event.Err)
}

func TestRegistry_Dispatch(t *testing.T) {
	first := tt.NewRecorder()
	second := tt.NewRecorder()
	errs := &errorOnly{}

	r := NewRegistry().Register(first).Register(errs).Register(second)
	require.Equal(t, 3, r.Len())

	boom := errors.New("boom")
	r.FireParse(strfmt.ParseEvent{Template: "{}"})
	r.FireFragment(strfmt.FragmentEvent{Template: "{}", Index: 0})
	r.FireRender(strfmt.RenderEvent{Template: "{}", Result: "x"})
	r.FireError(strfmt.ErrorEvent{Template: "{", Err: boom})

	expected := []string{"parse", "fragment", "render", "error"}
	assert.Equal(t, expected, first.Names())
	assert.Equal(t, expected, second.Names())
	assert.Equal(t, []error{boom}, errs.errs)
}

func TestRegistry_IgnoresNonHooks(t *testing.T) {
	r := NewRegistry().Register("not a hook").Register(42)

	assert.NotPanics(t, func() {
		r.FireParse(strfmt.ParseEvent{})
		r.FireFragment(strfmt.FragmentEvent{})
		r.FireRender(strfmt.RenderEvent{})
		r.FireError(strfmt.ErrorEvent{})
	})
}

func TestRegistry_Clear(t *testing.T) {
	rec := tt.NewRecorder()
	r := NewRegistry().Register(rec)
	r.Clear()

	r.FireRender(strfmt.RenderEvent{})
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, rec.Events())
}

func TestRegistry_WithFormatter(t *testing.T) {
	rec := tt.NewRecorder()
	f := strfmt.New(strfmt.DefaultConfig()).WithHooks(NewRegistry().Register(rec))

	tt.AssertFormat(t, f, "a-b", "{}-{}", "a", "b")
	assert.Equal(t, []string{"parse", "fragment", "fragment", "render"}, rec.Names())
}
