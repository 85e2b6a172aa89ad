// Package oas holds the OpenAPI/JSON Schema output model produced by the
// converters. Every type renders to an insertion-ordered tree so that emitted
// documents keep a stable, readable key order.
package oas

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an ordered JSON object.
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty Map.
func NewMap() *Map { return orderedmap.New[string, any]() }

// SchemaMap maps property names to schemas in declaration order.
type SchemaMap = orderedmap.OrderedMap[string, *Schema]

// NewSchemaMap returns an empty SchemaMap.
func NewSchemaMap() *SchemaMap { return orderedmap.New[string, *Schema]() }

// Schema is a JSON Schema node as emitted for variables, bodies, responses
// and component schemas.
type Schema struct {
	// Ref, when set, makes the schema a pure reference; no other key is
	// rendered.
	Ref string

	Type        string
	Format      string
	Description string
	Nullable    *bool
	ReadOnly    *bool
	WriteOnly   *bool
	Example     any

	// String
	Enum      []string
	MinLength *int
	MaxLength *int
	Pattern   *string

	// Numeric. ExclusiveMaximum/ExclusiveMinimum carry the numeric form;
	// ExclusiveMax/ExclusiveMin the OpenAPI 3.0 boolean form.
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	ExclusiveMin     bool
	ExclusiveMax     bool
	MultipleOf       *float64

	// Object. A nil Required is omitted; a non-nil empty one renders as [].
	Properties    *SchemaMap
	Required      []string
	MinProperties *int
	MaxProperties *int

	// Array
	Items       *Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems *bool

	// Combinators
	OneOf         []*Schema
	AnyOf         []*Schema
	AllOf         []*Schema
	Discriminator *Discriminator

	// Extensions are rendered last, in order. A key that collides with one
	// rendered above replaces its value.
	Extensions *Map
}

// Discriminator names the property that selects a oneOf alternative.
type Discriminator struct {
	PropertyName string
}

// Tree renders s as an ordered map.
func (s *Schema) Tree() *Map {
	out := NewMap()
	if s == nil {
		return out
	}
	if s.Ref != "" {
		out.Set("$ref", s.Ref)
		return out
	}
	setString(out, "type", s.Type)
	setString(out, "format", s.Format)
	setString(out, "description", s.Description)
	setPtr(out, "nullable", s.Nullable)
	setPtr(out, "readOnly", s.ReadOnly)
	setPtr(out, "writeOnly", s.WriteOnly)
	if s.Example != nil {
		out.Set("example", s.Example)
	}
	if s.Enum != nil {
		out.Set("enum", append([]string{}, s.Enum...))
	}
	setPtr(out, "minLength", s.MinLength)
	setPtr(out, "maxLength", s.MaxLength)
	setPtr(out, "pattern", s.Pattern)

	setPtr(out, "minimum", s.Minimum)
	setPtr(out, "maximum", s.Maximum)
	switch {
	case s.ExclusiveMin:
		out.Set("exclusiveMinimum", true)
	case s.ExclusiveMinimum != nil:
		out.Set("exclusiveMinimum", *s.ExclusiveMinimum)
	}
	switch {
	case s.ExclusiveMax:
		out.Set("exclusiveMaximum", true)
	case s.ExclusiveMaximum != nil:
		out.Set("exclusiveMaximum", *s.ExclusiveMaximum)
	}
	setPtr(out, "multipleOf", s.MultipleOf)

	if s.Properties != nil {
		props := NewMap()
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			props.Set(pair.Key, pair.Value.Tree())
		}
		out.Set("properties", props)
	}
	if s.Required != nil {
		out.Set("required", append([]string{}, s.Required...))
	}
	setPtr(out, "minProperties", s.MinProperties)
	setPtr(out, "maxProperties", s.MaxProperties)

	if s.Items != nil {
		out.Set("items", s.Items.Tree())
	}
	setPtr(out, "minItems", s.MinItems)
	setPtr(out, "maxItems", s.MaxItems)
	setPtr(out, "uniqueItems", s.UniqueItems)

	setSchemas(out, "oneOf", s.OneOf)
	setSchemas(out, "anyOf", s.AnyOf)
	setSchemas(out, "allOf", s.AllOf)
	if s.Discriminator != nil {
		d := NewMap()
		d.Set("propertyName", s.Discriminator.PropertyName)
		out.Set("discriminator", d)
	}

	if s.Extensions != nil {
		for pair := s.Extensions.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value)
		}
	}
	return out
}

// MarshalJSON renders the schema with its keys in Tree order.
func (s *Schema) MarshalJSON() ([]byte, error) { return EncodeJSON(s.Tree(), "") }

// MarshalYAML renders the schema with its keys in Tree order.
func (s *Schema) MarshalYAML() (any, error) { return s.Tree(), nil }

func setString(m *Map, key, v string) {
	if v != "" {
		m.Set(key, v)
	}
}

func setPtr[T any](m *Map, key string, v *T) {
	if v != nil {
		m.Set(key, *v)
	}
}

func setSchemas(m *Map, key string, list []*Schema) {
	if list == nil {
		return
	}
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s.Tree()
	}
	m.Set(key, out)
}
