package swagdoc

import (
	"strconv"
	"strings"

	"github.com/reoring/swagdoc/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, kv ...string) Issue
}

// RootPath returns the PathRef for the document root ("/").
func RootPath() PathRef { return &pathRef{parts: nil} }

// PathAt parses a JSON Pointer ("/a/b") into a PathRef. Segments are kept
// escaped, so PathAt(p).Pointer() == p for any pointer Pointer produced.
func PathAt(path string) PathRef {
	if path == "" || path == "/" {
		return RootPath()
	}
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue renders the message for code through i18n. kv holds alternating
// placeholder names and values ("field", "example", "expected", "a string").
func (p *pathRef) Issue(code string, kv ...string) Issue {
	data := make(map[string]string, len(kv)/2)
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i]] = kv[i+1]
		params[kv[i]] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}
