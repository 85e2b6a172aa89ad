package swagdoc

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Variable is one node of the shorthand schema tree. The set of
// implementations is closed: StringVariable, PasswordVariable, DateVariable,
// NumberVariable, IntegerVariable, BooleanVariable, ArrayVariable,
// ObjectVariable and RefVariable.
type Variable interface {
	Kind() Kind
	Common() *Base
	isVariable()
}

// Properties maps field names to variables in declaration order.
type Properties = orderedmap.OrderedMap[string, Variable]

// NewProperties returns an empty Properties map.
func NewProperties() *Properties { return orderedmap.New[string, Variable]() }

// Base holds the fields shared by every variable kind.
type Base struct {
	Required    bool
	Description string
	Nullable    *bool
	ReadOnly    *bool
	WriteOnly   *bool
	// Extensions keeps keys the shorthand format does not know about
	// ("format", "default", "x-*", ...). They are emitted after the known
	// keys of leaf, array and object schemas.
	Extensions *Object
}

// Common returns the shared fields.
func (b *Base) Common() *Base { return b }

// StringVariable is a "string" variable.
type StringVariable struct {
	Base
	Example   string
	MinLength *int
	MaxLength *int
	Pattern   *string
	Enum      []string
}

// PasswordVariable is a "password" variable.
type PasswordVariable struct {
	Base
	Example   string
	MinLength *int
	MaxLength *int
	Pattern   *string
}

// DateVariable is a "date" variable. Example holds the text as written, or
// the RFC3339 rendering when the source carried a native timestamp.
type DateVariable struct {
	Base
	Example   string
	MinLength *int
	MaxLength *int
	Pattern   *string
}

// Bounds are the numeric constraints shared by number and integer.
type Bounds struct {
	Maximum          *float64
	Minimum          *float64
	ExclusiveMaximum *float64
	ExclusiveMinimum *float64
	MultipleOf       *float64
}

// NumberVariable is a "number" variable.
type NumberVariable struct {
	Base
	Bounds
	Example float64
}

// IntegerVariable is an "integer" variable.
type IntegerVariable struct {
	Base
	Bounds
	Example float64
}

// BooleanVariable is a "boolean" variable.
type BooleanVariable struct {
	Base
	Example bool
}

// ArrayVariable is an "array" variable with exactly one item schema.
type ArrayVariable struct {
	Base
	Items       Variable
	MinItems    *int
	MaxItems    *int
	UniqueItems *bool
}

// ObjectVariable is an "object" variable.
type ObjectVariable struct {
	Base
	Properties    *Properties
	MinProperties *int
	MaxProperties *int
}

// RefVariable points at a reusable schema under #/components/. The target
// is never resolved.
type RefVariable struct {
	Base
	Ref string
}

func (*StringVariable) Kind() Kind   { return KindString }
func (*PasswordVariable) Kind() Kind { return KindPassword }
func (*DateVariable) Kind() Kind     { return KindDate }
func (*NumberVariable) Kind() Kind   { return KindNumber }
func (*IntegerVariable) Kind() Kind  { return KindInteger }
func (*BooleanVariable) Kind() Kind  { return KindBoolean }
func (*ArrayVariable) Kind() Kind    { return KindArray }
func (*ObjectVariable) Kind() Kind   { return KindObject }
func (*RefVariable) Kind() Kind      { return KindRef }

func (*StringVariable) isVariable()   {}
func (*PasswordVariable) isVariable() {}
func (*DateVariable) isVariable()     {}
func (*NumberVariable) isVariable()   {}
func (*IntegerVariable) isVariable()  {}
func (*BooleanVariable) isVariable()  {}
func (*ArrayVariable) isVariable()    {}
func (*ObjectVariable) isVariable()   {}
func (*RefVariable) isVariable()      {}

// requiredNames lists the names of required entries in declaration order.
// The result is never nil so that an empty list still renders as [].
func requiredNames(props *Properties) []string {
	names := []string{}
	if props == nil {
		return names
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != nil && pair.Value.Common().Required {
			names = append(names, pair.Key)
		}
	}
	return names
}
