// Package schema builds and validates JSON Schema documents for configuration
// files.
//
// # Quick Start
//
//	s := schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "name":    schema.String("Display name").MaxLength(64),
//	    "verbose": schema.Boolean("Trace every event"),
//	}, "name"))
//
//	if err := s.Validate(doc); err != nil {
//	    // err is a *schema.ValidationError
//	}
//
// Objects built with [Object] and [Nested] reject unknown properties, so typos in
// configuration keys surface as validation errors.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a compiled JSON Schema together with its source map.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the schema document.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate checks data, typically a decoded YAML or JSON document, against the
// schema. A nil Schema accepts everything.
func (s *Schema) Validate(data any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(data); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a schema document. A nil document compiles to a nil Schema.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(string(doc)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", parsed); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Builders
// -----------------------------------------------------------------------------

// Object creates a closed object schema. Property names passed as required must
// be present.
func Object(properties map[string]*Property, required ...string) map[string]any {
	return objectSchema(properties, required)
}

func objectSchema(properties map[string]*Property, required []string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}
	m := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		m["required"] = required
	}
	return m
}

// Property is one property of an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	maxLength   *int
	keyPattern  string
	items       map[string]any
	object      map[string]any
	values      *Property
	def         any
}

func (p *Property) build() map[string]any {
	m := map[string]any{}
	if p.object != nil {
		for k, v := range p.object {
			m[k] = v
		}
	}
	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.maxLength != nil {
		m["maxLength"] = *p.maxLength
	}
	if p.items != nil {
		m["items"] = p.items
	}
	if p.values != nil {
		m["additionalProperties"] = p.values.build()
	}
	if p.keyPattern != "" {
		m["propertyNames"] = map[string]any{"pattern": p.keyPattern}
	}
	if p.def != nil {
		m["default"] = p.def
	}
	return m
}

// String creates a string property.
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Any creates a property that accepts any JSON value.
func Any(description string) *Property {
	return &Property{description: description}
}

// Array creates an array property with the given item schema.
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// Nested creates a closed object property with the given properties.
func Nested(description string, properties map[string]*Property, required ...string) *Property {
	return &Property{description: description, object: objectSchema(properties, required)}
}

// StringMap creates an object property whose values are all strings, such as
// a table of environment overrides.
func StringMap(description string) *Property {
	return &Property{typ: "object", description: description, values: &Property{typ: "string"}}
}

// Enum sets allowed values for the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// MaxLength sets the maximum length for string properties.
func (p *Property) MaxLength(max int) *Property {
	p.maxLength = &max
	return p
}

// KeyPattern constrains the property names of a StringMap.
func (p *Property) KeyPattern(pattern string) *Property {
	p.keyPattern = pattern
	return p
}

// Default sets the documented default value.
func (p *Property) Default(value any) *Property {
	p.def = value
	return p
}
