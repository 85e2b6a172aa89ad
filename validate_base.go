package swagdoc

import "strings"

var baseKeys = []string{"type", "description", "required", "nullable", "readOnly", "writeOnly"}

// ValidateBaseVariable checks the fields every variable kind shares: a known
// "type", a non-empty string "description", a boolean "required" and, when
// present, boolean "nullable", "readOnly" and "writeOnly".
func ValidateBaseVariable(raw any) error {
	m, ok := asMapping(raw)
	if !ok {
		return notAnObject(RootPath(), "variable")
	}
	_, _, err := decodeBase(m, RootPath(), true)
	return err
}

// decodeBase validates and extracts the shared fields. requireFlag is false
// for path variables, whose required flag is implied.
func decodeBase(m mapping, p PathRef, requireFlag bool) (Kind, Base, error) {
	var b Base
	kind, err := decodeKind(m, p)
	if err != nil {
		return "", b, err
	}

	d, ok := m.get("description")
	if !ok || d == nil || d == "" {
		return "", b, fail(p.Field("description"), CodeMissingDescription)
	}
	desc, ok := d.(string)
	if !ok {
		return "", b, wrongType(p, "description", "a string")
	}
	b.Description = desc

	r, ok := m.get("required")
	switch {
	case !ok && requireFlag:
		return "", b, fail(p.Field("required"), CodeMissingRequired)
	case !ok:
		b.Required = true
	default:
		req, isBool := r.(bool)
		if !isBool {
			return "", b, wrongType(p, "required", "a boolean")
		}
		b.Required = req
	}

	for _, f := range []struct {
		name string
		dst  **bool
	}{
		{"nullable", &b.Nullable},
		{"readOnly", &b.ReadOnly},
		{"writeOnly", &b.WriteOnly},
	} {
		v, ok := m.get(f.name)
		if !ok {
			continue
		}
		bv, isBool := v.(bool)
		if !isBool {
			return "", b, wrongType(p, f.name, "a boolean")
		}
		*f.dst = &bv
	}
	return kind, b, nil
}

func decodeKind(m mapping, p PathRef) (Kind, error) {
	t, _ := m.get("type")
	s, _ := t.(string)
	k := Kind(s)
	if !k.IsKnown() {
		names := make([]string, len(knownKinds))
		for i, kk := range knownKinds {
			names[i] = string(kk)
		}
		return "", fail(p.Field("type"), CodeInvalidType, "expected", strings.Join(names, " | "))
	}
	return k, nil
}

// extensions copies every key outside known into a fresh Object, or returns
// nil when there is none.
func extensions(m mapping, known ...[]string) *Object {
	var out *Object
	_ = m.each(func(key string, v any) error {
		for _, set := range known {
			for _, k := range set {
				if k == key {
					return nil
				}
			}
		}
		if out == nil {
			out = NewObject()
		}
		out.Set(key, cloneValue(v))
		return nil
	})
	return out
}
