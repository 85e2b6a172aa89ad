package swagdoc

import (
	"time"

	"github.com/reoring/swagdoc/oas"
)

// ConvertVariable converts a decoded variable into its output schema.
// Objects gain a "required" list naming their required properties; no other
// node keeps its required flag. Refs become a bare {$ref}. The variable is
// not modified and shares no mutable state with the result.
func ConvertVariable(v Variable, opts ...ConvertOpt) *oas.Schema {
	return convertVariable(v, convertOpt(opts))
}

func convertVariable(v Variable, opt ConvertOpt) *oas.Schema {
	switch t := v.(type) {
	case *RefVariable:
		return &oas.Schema{Ref: t.Ref}
	case *StringVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Example = t.Example
		s.Enum = cloneStrings(t.Enum)
		lengths(s, t.MinLength, t.MaxLength, t.Pattern)
		return withExtensions(s, &t.Base)
	case *PasswordVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Example = t.Example
		lengths(s, t.MinLength, t.MaxLength, t.Pattern)
		return withExtensions(s, &t.Base)
	case *DateVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		if opt.Profile == ProfileOpenAPI3 {
			s.Format = dateFormat(t.Example)
		}
		s.Example = t.Example
		lengths(s, t.MinLength, t.MaxLength, t.Pattern)
		return withExtensions(s, &t.Base)
	case *NumberVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Example = t.Example
		bounds(s, t.Bounds, opt)
		return withExtensions(s, &t.Base)
	case *IntegerVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Example = t.Example
		bounds(s, t.Bounds, opt)
		return withExtensions(s, &t.Base)
	case *BooleanVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Example = t.Example
		return withExtensions(s, &t.Base)
	case *ArrayVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Items = convertVariable(t.Items, opt)
		s.MinItems = cloneInt(t.MinItems)
		s.MaxItems = cloneInt(t.MaxItems)
		s.UniqueItems = cloneBool(t.UniqueItems)
		return withExtensions(s, &t.Base)
	case *ObjectVariable:
		s := leaf(t.Kind(), &t.Base, opt)
		s.Properties = convertProperties(t.Properties, opt)
		s.Required = requiredList(t.Properties, opt)
		s.MinProperties = cloneInt(t.MinProperties)
		s.MaxProperties = cloneInt(t.MaxProperties)
		return withExtensions(s, &t.Base)
	}
	return nil
}

// leaf fills the fields every non-ref schema shares.
func leaf(kind Kind, b *Base, opt ConvertOpt) *oas.Schema {
	s := &oas.Schema{
		Type:        string(kind),
		Description: b.Description,
		Nullable:    cloneBool(b.Nullable),
		ReadOnly:    cloneBool(b.ReadOnly),
		WriteOnly:   cloneBool(b.WriteOnly),
	}
	if opt.Profile == ProfileOpenAPI3 {
		switch kind {
		case KindPassword:
			s.Type, s.Format = string(KindString), string(KindPassword)
		case KindDate:
			s.Type = string(KindString)
		}
	}
	return s
}

func withExtensions(s *oas.Schema, b *Base) *oas.Schema {
	s.Extensions = cloneObject(b.Extensions)
	return s
}

func lengths(s *oas.Schema, minLength, maxLength *int, pattern *string) {
	s.MinLength = cloneInt(minLength)
	s.MaxLength = cloneInt(maxLength)
	s.Pattern = cloneString(pattern)
}

// bounds copies numeric constraints. OpenAPI 3.0 only knows the boolean
// exclusive flags, so the openapi3 profile folds a numeric exclusive bound
// into minimum/maximum when it is the tighter one.
func bounds(s *oas.Schema, b Bounds, opt ConvertOpt) {
	s.Minimum = cloneFloat(b.Minimum)
	s.Maximum = cloneFloat(b.Maximum)
	s.MultipleOf = cloneFloat(b.MultipleOf)
	if opt.Profile != ProfileOpenAPI3 {
		s.ExclusiveMinimum = cloneFloat(b.ExclusiveMinimum)
		s.ExclusiveMaximum = cloneFloat(b.ExclusiveMaximum)
		return
	}
	if x := b.ExclusiveMinimum; x != nil && (s.Minimum == nil || *x >= *s.Minimum) {
		s.Minimum, s.ExclusiveMin = cloneFloat(x), true
	}
	if x := b.ExclusiveMaximum; x != nil && (s.Maximum == nil || *x <= *s.Maximum) {
		s.Maximum, s.ExclusiveMax = cloneFloat(x), true
	}
}

// dateFormat picks "date" for calendar dates and "date-time" otherwise.
func dateFormat(example string) string {
	if _, err := time.Parse("2006-01-02", example); err == nil {
		return "date"
	}
	return "date-time"
}

func convertProperties(props *Properties, opt ConvertOpt) *oas.SchemaMap {
	out := oas.NewSchemaMap()
	if props == nil {
		return out
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, convertVariable(pair.Value, opt))
	}
	return out
}

// requiredList is requiredNames, except that the openapi3 profile drops an
// empty list.
func requiredList(props *Properties, opt ConvertOpt) []string {
	names := requiredNames(props)
	if len(names) == 0 && opt.Profile == ProfileOpenAPI3 {
		return nil
	}
	return names
}
