package swagdoc

import (
	"strings"
	"time"

	"github.com/reoring/swagdoc/codec"
)

var (
	stringKeys   = []string{"example", "minLength", "maxLength", "pattern", "enum"}
	passwordKeys = []string{"example", "minLength", "maxLength", "pattern"}
	dateKeys     = []string{"example", "minLength", "maxLength", "pattern"}
	numberKeys   = []string{"example", "maximum", "minimum", "exclusiveMaximum", "exclusiveMinimum", "multipleOf"}
	booleanKeys  = []string{"example"}
	arrayKeys    = []string{"items", "minItems", "maxItems", "uniqueItems"}
	objectKeys   = []string{"properties", "minProperties", "maxProperties"}
)

// ValidateVariable validates raw as a variable of the kind named by its
// "type" field, recursing into object properties and array items. It stops at
// the first violation.
func ValidateVariable(raw any) error {
	_, err := DecodeVariable(raw)
	return err
}

// DecodeVariable validates raw and returns the typed variable.
func DecodeVariable(raw any) (Variable, error) {
	return decodeVariable(raw, RootPath(), true)
}

// decodeVariable is the single dispatch point every recursive validation
// goes through. Composite kinds are valid discriminants but are not
// variables, so they end up here as unknown variable types too.
func decodeVariable(raw any, p PathRef, requireFlag bool) (Variable, error) {
	m, ok := asMapping(raw)
	var kind string
	if ok {
		t, _ := m.get("type")
		kind, _ = t.(string)
	}
	switch Kind(kind) {
	case KindString:
		return decodeString(m, p, requireFlag)
	case KindPassword:
		return decodePassword(m, p, requireFlag)
	case KindDate:
		return decodeDate(m, p, requireFlag)
	case KindNumber:
		base, bounds, example, err := decodeNumeric(m, p, requireFlag)
		if err != nil {
			return nil, err
		}
		return &NumberVariable{Base: base, Bounds: bounds, Example: example}, nil
	case KindInteger:
		base, bounds, example, err := decodeNumeric(m, p, requireFlag)
		if err != nil {
			return nil, err
		}
		return &IntegerVariable{Base: base, Bounds: bounds, Example: example}, nil
	case KindBoolean:
		return decodeBoolean(m, p, requireFlag)
	case KindArray:
		return decodeArray(m, p, requireFlag)
	case KindObject:
		return decodeObject(m, p, requireFlag)
	case KindRef:
		ref, err := decodeRef(m, p, requireFlag)
		if err != nil {
			return nil, err
		}
		return ref, nil
	default:
		return nil, fail(p, CodeUnknownVariableType, "payload", payload(raw))
	}
}

func decodeString(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	v := &StringVariable{Base: base}
	if v.Example, err = requiredText(m, p, "example"); err != nil {
		return nil, err
	}
	if v.Enum, err = optEnum(m, p); err != nil {
		return nil, err
	}
	if v.MinLength, v.MaxLength, v.Pattern, err = lengthRules(m, p); err != nil {
		return nil, err
	}
	v.Extensions = extensions(m, baseKeys, stringKeys)
	return v, nil
}

func decodePassword(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	v := &PasswordVariable{Base: base}
	if v.Example, err = requiredText(m, p, "example"); err != nil {
		return nil, err
	}
	if v.MinLength, v.MaxLength, v.Pattern, err = lengthRules(m, p); err != nil {
		return nil, err
	}
	v.Extensions = extensions(m, baseKeys, passwordKeys)
	return v, nil
}

func decodeDate(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	v := &DateVariable{Base: base}
	ex, ok := m.get("example")
	switch t := ex.(type) {
	case time.Time:
		v.Example = codec.FormatDate(t)
	case string:
		if t == "" {
			return nil, missing(p, "example")
		}
		if _, err := codec.ParseDate(t); err != nil {
			return nil, fail(p.Field("example"), CodeInvalidDate, "value", t)
		}
		v.Example = t
	default:
		if !ok || ex == nil {
			return nil, missing(p, "example")
		}
		return nil, wrongType(p, "example", "a string or a date")
	}
	if v.MinLength, v.MaxLength, v.Pattern, err = lengthRules(m, p); err != nil {
		return nil, err
	}
	v.Extensions = extensions(m, baseKeys, dateKeys)
	return v, nil
}

func decodeNumeric(m mapping, p PathRef, requireFlag bool) (Base, Bounds, float64, error) {
	var bounds Bounds
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return base, bounds, 0, err
	}
	ex, ok := m.get("example")
	if !ok {
		return base, bounds, 0, missing(p, "example")
	}
	example, isNum := asNumber(ex)
	if !isNum {
		return base, bounds, 0, wrongType(p, "example", "a number")
	}
	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{"exclusiveMaximum", &bounds.ExclusiveMaximum},
		{"exclusiveMinimum", &bounds.ExclusiveMinimum},
		{"minimum", &bounds.Minimum},
		{"maximum", &bounds.Maximum},
		{"multipleOf", &bounds.MultipleOf},
	} {
		if *f.dst, err = optFloat(m, p, f.name); err != nil {
			return base, bounds, 0, err
		}
	}
	base.Extensions = extensions(m, baseKeys, numberKeys)
	return base, bounds, example, nil
}

func decodeBoolean(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	ex, ok := m.get("example")
	if !ok {
		return nil, missing(p, "example")
	}
	b, isBool := ex.(bool)
	if !isBool {
		return nil, wrongType(p, "example", "a boolean")
	}
	v := &BooleanVariable{Base: base, Example: b}
	v.Extensions = extensions(m, baseKeys, booleanKeys)
	return v, nil
}

func decodeArray(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	raw, ok := m.get("items")
	if !ok || raw == nil {
		return nil, missing(p, "items")
	}
	if _, isMap := asMapping(raw); !isMap {
		return nil, notAnObject(p.Field("items"), "items")
	}
	v := &ArrayVariable{Base: base}
	if v.Items, err = decodeVariable(raw, p.Field("items"), true); err != nil {
		return nil, err
	}
	if v.MinItems, err = optInt(m, p, "minItems"); err != nil {
		return nil, err
	}
	if v.MaxItems, err = optInt(m, p, "maxItems"); err != nil {
		return nil, err
	}
	if v.UniqueItems, err = optBool(m, p, "uniqueItems"); err != nil {
		return nil, err
	}
	v.Extensions = extensions(m, baseKeys, arrayKeys)
	return v, nil
}

func decodeObject(m mapping, p PathRef, requireFlag bool) (Variable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	raw, ok := m.get("properties")
	if !ok || raw == nil {
		return nil, missing(p, "properties")
	}
	props, err := decodeProperties(raw, p.Field("properties"), "properties", true)
	if err != nil {
		return nil, err
	}
	v := &ObjectVariable{Base: base, Properties: props}
	if v.MinProperties, err = optInt(m, p, "minProperties"); err != nil {
		return nil, err
	}
	if v.MaxProperties, err = optInt(m, p, "maxProperties"); err != nil {
		return nil, err
	}
	v.Extensions = extensions(m, baseKeys, objectKeys)
	return v, nil
}

func decodeRef(m mapping, p PathRef, requireFlag bool) (*RefVariable, error) {
	_, base, err := decodeBase(m, p, requireFlag)
	if err != nil {
		return nil, err
	}
	raw, ok := m.get("ref")
	if !ok || raw == nil {
		return nil, missing(p, "ref")
	}
	ref, isStr := raw.(string)
	if !isStr {
		return nil, wrongType(p, "ref", "a string")
	}
	if !strings.HasPrefix(ref, RefPrefix) {
		return nil, fail(p.Field("ref"), CodeInvalidRefFormat, "expected", RefPrefix)
	}
	// a ref is purely a pointer; extra keys have nowhere to go
	return &RefVariable{Base: base, Ref: ref}, nil
}

// decodeProperties decodes a name->variable mapping in document order.
func decodeProperties(raw any, p PathRef, field string, requireFlag bool) (*Properties, error) {
	m, ok := asMapping(raw)
	if !ok {
		return nil, notAnObject(p, field)
	}
	props := NewProperties()
	err := m.each(func(name string, v any) error {
		dv, err := decodeVariable(v, p.Field(name), requireFlag)
		if err != nil {
			return err
		}
		props.Set(name, dv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

// ---- field helpers ----

// requiredText reads a mandatory non-empty string.
func requiredText(m mapping, p PathRef, field string) (string, error) {
	v, ok := m.get(field)
	if !ok || v == nil || v == "" {
		return "", missing(p, field)
	}
	s, isStr := v.(string)
	if !isStr {
		return "", wrongType(p, field, "a string")
	}
	return s, nil
}

func lengthRules(m mapping, p PathRef) (minLength, maxLength *int, pattern *string, err error) {
	if maxLength, err = optInt(m, p, "maxLength"); err != nil {
		return
	}
	if minLength, err = optInt(m, p, "minLength"); err != nil {
		return
	}
	pattern, err = optString(m, p, "pattern")
	return
}

func optInt(m mapping, p PathRef, field string) (*int, error) {
	v, ok := m.get(field)
	if !ok || v == nil {
		return nil, nil
	}
	n, isInt := asInt(v)
	if !isInt {
		return nil, wrongType(p, field, "an integer")
	}
	return &n, nil
}

func optFloat(m mapping, p PathRef, field string) (*float64, error) {
	v, ok := m.get(field)
	if !ok || v == nil {
		return nil, nil
	}
	f, isNum := asNumber(v)
	if !isNum {
		return nil, wrongType(p, field, "a number")
	}
	return &f, nil
}

func optString(m mapping, p PathRef, field string) (*string, error) {
	v, ok := m.get(field)
	if !ok || v == nil {
		return nil, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return nil, wrongType(p, field, "a string")
	}
	return &s, nil
}

func optBool(m mapping, p PathRef, field string) (*bool, error) {
	v, ok := m.get(field)
	if !ok || v == nil {
		return nil, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return nil, wrongType(p, field, "a boolean")
	}
	return &b, nil
}

func optEnum(m mapping, p PathRef) ([]string, error) {
	v, ok := m.get("enum")
	if !ok || v == nil {
		return nil, nil
	}
	items, isSlice := asSlice(v)
	if !isSlice {
		return nil, wrongType(p, "enum", "an array")
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		s, isStr := it.(string)
		if !isStr {
			return nil, fail(p.Field("enum").Index(i), CodeWrongType, "field", "enum", "expected", "an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}
