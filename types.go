package swagdoc

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON/YAML mapping. Raw documents decoded by
// the sources in this module use it for every mapping node.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object { return orderedmap.New[string, any]() }

// Kind is the discriminant stored in a variable's "type" field.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindBoolean  Kind = "boolean"
	KindPassword Kind = "password"
	KindDate     Kind = "date"
	KindArray    Kind = "array"
	KindObject   Kind = "object"
	KindRef      Kind = "ref"
	KindOneOf    Kind = "oneOf"
	KindAnyOf    Kind = "anyOf"
	KindAllOf    Kind = "allOf"
)

// knownKinds lists every discriminant accepted by the base validator, in the
// order used for messages.
var knownKinds = []Kind{
	KindNumber, KindInteger, KindString, KindPassword, KindDate, KindBoolean,
	KindArray, KindObject, KindOneOf, KindAnyOf, KindAllOf, KindRef,
}

// IsKnown reports whether k is one of the twelve discriminants.
func (k Kind) IsKnown() bool {
	for _, kk := range knownKinds {
		if k == kk {
			return true
		}
	}
	return false
}

// IsComposite reports whether k is oneOf, anyOf or allOf.
func (k Kind) IsComposite() bool {
	return k == KindOneOf || k == KindAnyOf || k == KindAllOf
}

// Method is a route HTTP verb.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
)

// IsValid reports whether m is one of the four supported verbs.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// AcceptsBody reports whether routes with this method may declare a body.
func (m Method) AcceptsBody() bool { return m == MethodPost || m == MethodPut }

// RefPrefix is the namespace every ref must point into.
const RefPrefix = "#/components/"

// RootDescription is the description given to synthesized object wrappers.
const RootDescription = "root"

// Profile selects the output dialect of the converter.
type Profile int

const (
	// ProfileShorthand keeps the historical output of the shorthand tool:
	// kind names pass through verbatim, responses carry "response" or the
	// combinator key directly, operations list "consumes".
	ProfileShorthand Profile = iota
	// ProfileOpenAPI3 emits output that OpenAPI 3.0 validators accept.
	ProfileOpenAPI3
)

// String returns the profile name used by the CLI.
func (p Profile) String() string {
	switch p {
	case ProfileOpenAPI3:
		return "openapi3"
	default:
		return "shorthand"
	}
}

// ParseProfile maps a CLI profile name to a Profile.
func ParseProfile(s string) (Profile, bool) {
	switch s {
	case "", "shorthand":
		return ProfileShorthand, true
	case "openapi3":
		return ProfileOpenAPI3, true
	}
	return ProfileShorthand, false
}

// ConvertOpt bundles conversion options.
type ConvertOpt struct {
	Profile Profile
}

func convertOpt(opts []ConvertOpt) ConvertOpt {
	var opt ConvertOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
