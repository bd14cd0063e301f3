package strfmt_test

import (
	"testing"

	"github.com/rickchristie/strfmt"
	"github.com/rickchristie/strfmt/hooks"
	"github.com/rickchristie/strfmt/internal/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Hooks(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected []string
	}{
		{name: "no braces", template: "plain", expected: []string{"render"}},
		{name: "literal only", template: "{{x}}", expected: []string{"parse", "render"}},
		{
			name:     "placeholders",
			template: "{} and {}",
			args:     []any{1, 2},
			expected: []string{"parse", "fragment", "fragment", "render"},
		},
		{
			name:     "env fires during parse",
			template: "{$NAME} {}",
			args:     []any{1},
			expected: []string{"fragment", "parse", "fragment", "render"},
		},
		{name: "syntax error", template: "{", expected: []string{"error"}},
		{
			name:     "binding error after first fragment",
			template: "{0} {1}",
			args:     []any{1},
			expected: []string{"parse", "fragment", "error"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := tt.NewRecorder()
			f := strictFormatter().
				WithEnvLookup(tt.MapEnv(map[string]string{"NAME": "ada"})).
				WithHooks(hooks.NewRegistry().Register(rec))

			_, _ = f.Format(tc.template, tc.args...)
			assert.Equal(t, tc.expected, rec.Names())
		})
	}
}

func TestFormatter_FragmentEvents(t *testing.T) {
	rec := tt.NewRecorder()
	f := strictFormatter().
		WithEnvLookup(tt.MapEnv(map[string]string{"NAME": "ada"})).
		WithHooks(hooks.NewRegistry().Register(rec))

	out, err := f.Format("{$NAME}: {0:>4}", 7)
	require.NoError(t, err)
	assert.Equal(t, "ada:    7", out)

	frags := rec.Fragments()
	require.Len(t, frags, 2)

	assert.Equal(t, 0, frags[0].Index)
	assert.Equal(t, "ada", frags[0].Fragment.Text)
	assert.True(t, frags[0].Fragment.Ref.IsEnv)

	assert.Equal(t, 2, frags[1].Index)
	assert.Equal(t, "   7", frags[1].Fragment.Text)
	assert.Equal(t, ">4", frags[1].Fragment.SpecText)

	events := rec.Events()
	parse, ok := events[1].(strfmt.ParseEvent)
	require.True(t, ok)
	require.Len(t, parse.Fragments, 3)
	assert.True(t, parse.Fragments[0].Bound, "env placeholder is bound before the parse event")
	assert.False(t, parse.Fragments[2].Bound)

	render, ok := events[3].(strfmt.RenderEvent)
	require.True(t, ok)
	assert.Equal(t, "ada:    7", render.Result)
	assert.Equal(t, 1, render.Args)
}

func TestFormatter_ErrorEvent(t *testing.T) {
	rec := tt.NewRecorder()
	f := strictFormatter().WithHooks(hooks.NewRegistry().Register(rec))

	_, err := f.Format("{0.missing}", map[string]int{})
	require.Error(t, err)

	events := rec.Events()
	require.NotEmpty(t, events)
	last, ok := events[len(events)-1].(strfmt.ErrorEvent)
	require.True(t, ok)
	assert.Equal(t, "{0.missing}", last.Template)
	assert.Same(t, err, last.Err)
}

func TestFormatter_WithHooksNil(t *testing.T) {
	rec := tt.NewRecorder()
	f := strictFormatter().WithHooks(hooks.NewRegistry().Register(rec))
	f.WithHooks(nil)

	tt.AssertFormat(t, f, "1", "{}", 1)
	assert.Empty(t, rec.Events())
}
