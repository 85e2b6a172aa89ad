// Package emit renders converted fragments as YAML, JSON or a @swagger
// JSDoc block that swagger-jsdoc style tooling picks up from source files.
package emit

import (
	"fmt"
	"strings"

	"github.com/reoring/swagdoc/oas"
)

// Format selects a rendering.
type Format string

const (
	FormatJSDoc Format = "jsdoc"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSDoc, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("emit: unknown format %q (want jsdoc, yaml or json)", s)
}

// Render dispatches on f.
func Render(f Format, v any) ([]byte, error) {
	switch f {
	case FormatYAML:
		return YAML(v)
	case FormatJSON:
		return JSON(v)
	case FormatJSDoc:
		return JSDoc(v)
	}
	return nil, fmt.Errorf("emit: unknown format %q", f)
}

// YAML renders v as a YAML document without a leading document marker.
func YAML(v any) ([]byte, error) {
	b, err := oas.EncodeYAML(v)
	if err != nil {
		return nil, fmt.Errorf("emit: yaml: %w", err)
	}
	return []byte(strings.TrimPrefix(string(b), "---\n")), nil
}

// JSON renders v as indented JSON followed by a newline.
func JSON(v any) ([]byte, error) {
	b, err := oas.EncodeJSON(v, "  ")
	if err != nil {
		return nil, fmt.Errorf("emit: json: %w", err)
	}
	return append(b, '\n'), nil
}

// JSDoc wraps the YAML rendering of v in a comment block:
//
//	/**
//	* @swagger
//	* <yaml line>
//	*/
func JSDoc(v any) ([]byte, error) {
	y, err := YAML(v)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString("/**\n* @swagger\n")
	for _, line := range strings.Split(strings.TrimRight(string(y), "\n"), "\n") {
		b.WriteString("* ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("*/\n")
	return []byte(b.String()), nil
}
