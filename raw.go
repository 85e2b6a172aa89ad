package swagdoc

import (
	"math"
	"sort"

	"github.com/goccy/go-json"
)

// mapping is a read-only view over a raw mapping node. Documents decoded by
// this module's sources use *Object; hand-built map[string]any trees are
// walked in sorted key order since Go maps carry no order.
type mapping struct {
	om *Object
	m  map[string]any
}

func asMapping(v any) (mapping, bool) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return mapping{}, false
		}
		return mapping{om: t}, true
	case map[string]any:
		if t == nil {
			return mapping{}, false
		}
		return mapping{m: t}, true
	}
	return mapping{}, false
}

func (m mapping) get(key string) (any, bool) {
	if m.om != nil {
		return m.om.Get(key)
	}
	v, ok := m.m[key]
	return v, ok
}

func (m mapping) len() int {
	if m.om != nil {
		return m.om.Len()
	}
	return len(m.m)
}

// each visits entries in document order and stops at the first error.
func (m mapping) each(fn func(key string, v any) error) error {
	if m.om != nil {
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if err := fn(pair.Key, pair.Value); err != nil {
				return err
			}
		}
		return nil
	}
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, m.m[k]); err != nil {
			return err
		}
	}
	return nil
}

func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	f, ok := asNumber(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// payload renders a raw node for diagnostics.
func payload(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<unprintable>"
	}
	return string(b)
}
