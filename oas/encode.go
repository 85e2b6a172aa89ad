package oas

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// treer is implemented by every output type in this package.
type treer interface {
	Tree() *Map
}

func tree(v any) any {
	if t, ok := v.(treer); ok {
		return t.Tree()
	}
	return v
}

// EncodeJSON renders v as JSON. A *Map keeps its insertion order; a
// non-empty indent pretty-prints with that unit.
func EncodeJSON(v any, indent string) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if indent == "" {
		b, err = json.Marshal(tree(v))
	} else {
		b, err = json.MarshalIndent(tree(v), "", indent)
	}
	if err != nil {
		return nil, fmt.Errorf("oas: encode %T: %w", v, err)
	}
	return b, nil
}

// EncodeYAML renders v as a YAML document indented by two spaces.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree(v)); err != nil {
		return nil, fmt.Errorf("oas: encode %T: %w", v, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
