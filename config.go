package strfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/rickchristie/strfmt/schema"
	"gopkg.in/yaml.v3"
)

// Delimiters control how sequences, maps and pairs are rendered. A map renders as
// MapOpen, entries joined by MapSep, MapClose, where each entry is rendered like a
// pair.
type Delimiters struct {
	ArrayOpen  string `yaml:"array_open"`
	ArraySep   string `yaml:"array_sep"`
	ArrayClose string `yaml:"array_close"`
	MapOpen    string `yaml:"map_open"`
	MapSep     string `yaml:"map_sep"`
	MapClose   string `yaml:"map_close"`
	PairOpen   string `yaml:"pair_open"`
	PairSep    string `yaml:"pair_sep"`
	PairClose  string `yaml:"pair_close"`
}

// DefaultDelimiters renders [1, 2], {a: 1} and a: 1.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		ArrayOpen:  "[",
		ArraySep:   ", ",
		ArrayClose: "]",
		MapOpen:    "{",
		MapSep:     ", ",
		MapClose:   "}",
		PairOpen:   "",
		PairSep:    ": ",
		PairClose:  "",
	}
}

// Config configures a Formatter. Start from DefaultConfig; the zero value has empty
// delimiters and lenient unbound checking.
type Config struct {
	// StrictUnbound makes a placeholder without a matching argument an error. When
	// false such placeholders render as empty text.
	StrictUnbound bool `yaml:"strict_unbound"`

	Delimiters Delimiters `yaml:"delimiters"`

	// Env holds values for $NAME placeholders, consulted before the process
	// environment.
	Env map[string]string `yaml:"env,omitempty"`
}

// DefaultConfig returns the configuration used by the package-level Format.
func DefaultConfig() Config {
	return Config{
		StrictUnbound: DefaultStrictUnbound,
		Delimiters:    DefaultDelimiters(),
	}
}

func delimiterProps() map[string]*schema.Property {
	names := []string{
		"array_open", "array_sep", "array_close",
		"map_open", "map_sep", "map_close",
		"pair_open", "pair_sep", "pair_close",
	}
	props := make(map[string]*schema.Property, len(names))
	for _, name := range names {
		props[name] = schema.String("Container delimiter").MaxLength(16)
	}
	return props
}

var configSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"strict_unbound": schema.Boolean("Fail on placeholders without an argument").
		Default(DefaultStrictUnbound),
	"delimiters": schema.Nested("Container delimiters", delimiterProps()),
	"env": schema.StringMap("Values for $NAME placeholders").
		KeyPattern(`^[A-Za-z0-9_]+$`),
}))

// ParseConfig decodes a YAML configuration document. Fields missing from the
// document keep their DefaultConfig values. Documents that fail schema validation
// return an error wrapping ErrInvalidConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if raw == nil {
		return cfg, nil
	}
	if err := configSchema.Validate(raw); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration from r.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// LoadConfigFile reads and parses the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}
