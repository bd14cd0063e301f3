package strfmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func() Config
	}{
		{
			name:     "empty document",
			input:    "",
			expected: DefaultConfig,
		},
		{
			name:  "strictness",
			input: "strict_unbound: false\n",
			expected: func() Config {
				cfg := DefaultConfig()
				cfg.StrictUnbound = false
				return cfg
			},
		},
		{
			name:  "partial delimiters keep defaults",
			input: "delimiters:\n  array_open: \"(\"\n  array_close: \")\"\n",
			expected: func() Config {
				cfg := DefaultConfig()
				cfg.Delimiters.ArrayOpen = "("
				cfg.Delimiters.ArrayClose = ")"
				return cfg
			},
		},
		{
			name:  "env",
			input: "env:\n  USER_NAME: ada\n",
			expected: func() Config {
				cfg := DefaultConfig()
				cfg.Env = map[string]string{"USER_NAME": "ada"}
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected(), cfg)
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed yaml", input: "strict_unbound: ["},
		{name: "unknown key", input: "strict: true\n"},
		{name: "wrong type", input: "strict_unbound: maybe\n"},
		{name: "unknown delimiter", input: "delimiters:\n  tuple_open: \"(\"\n"},
		{name: "delimiter too long", input: "delimiters:\n  array_sep: \"" + strings.Repeat("-", 17) + "\"\n"},
		{name: "bad env name", input: "env:\n  bad-name: x\n"},
		{name: "non string env value", input: "env:\n  NAME: [1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.input))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("strict_unbound: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.StrictUnbound)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delimiters:\n  pair_sep: \" => \"\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, " => ", cfg.Delimiters.PairSep)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
