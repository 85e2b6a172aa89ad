package swagdoc

import "sort"

// cloneValue deep-copies a raw document node so that decoded variables and
// converted output never share mutable state with the caller's input.
// map[string]any nodes come back as *Object in sorted key order.
func cloneValue(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		out := NewObject()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, cloneValue(pair.Value))
		}
		return out
	case map[string]any:
		if t == nil {
			return nil
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewObject()
		for _, k := range keys {
			out.Set(k, cloneValue(t[k]))
		}
		return out
	case []any:
		if t == nil {
			return nil
		}
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

func cloneObject(o *Object) *Object {
	if o == nil {
		return nil
	}
	return cloneValue(o).(*Object)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
