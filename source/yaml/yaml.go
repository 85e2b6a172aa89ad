// Package yaml reads YAML documents into the ordered trees the validators
// consume. Mapping order is kept, duplicate keys are rejected with their
// positions, and numbers decode as float64 like the JSON source does.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Object is the ordered mapping every YAML mapping node becomes.
type Object = orderedmap.OrderedMap[string, any]

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	Path      string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// DepthError reports a document nested deeper than the configured limit.
type DepthError struct {
	Path string
	Max  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("YAML nesting exceeds %d at %s", e.Max, e.Path)
}

// Options tunes a Reader.
type Options struct {
	// AllowDuplicateKeys keeps the last value of a repeated key instead of
	// failing.
	AllowDuplicateKeys bool
	// MaxDepth caps mapping/sequence nesting; 0 disables the check.
	MaxDepth int
}

// Reader decodes a multi-document YAML stream.
type Reader struct {
	dec *yamlv3.Decoder
	opt Options
}

// NewReader constructs a Reader.
func NewReader(r io.Reader, opt Options) *Reader {
	return &Reader{dec: yamlv3.NewDecoder(r), opt: opt}
}

// Next returns the next document. It returns (nil, io.EOF) when the stream is
// exhausted.
func (r *Reader) Next() (any, error) {
	var root yamlv3.Node
	if err := r.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	c := converter{opt: r.opt}
	return c.node(&root, "", 0)
}

// ReadAll reads all documents from the stream.
func (r *Reader) ReadAll() ([]any, error) {
	var out []any
	for {
		v, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

type converter struct {
	opt Options
}

func (c converter) node(n *yamlv3.Node, path string, depth int) (any, error) {
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.node(n.Content[0], path, depth)
	case yamlv3.AliasNode:
		return c.node(n.Alias, path, depth)
	case yamlv3.MappingNode:
		if err := c.checkDepth(path, depth+1); err != nil {
			return nil, err
		}
		m := orderedmap.New[string, any]()
		if err := c.mapping(m, n, path, depth+1, map[string][2]int{}); err != nil {
			return nil, err
		}
		return m, nil
	case yamlv3.SequenceNode:
		if err := c.checkDepth(path, depth+1); err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(n.Content))
		for i, item := range n.Content {
			v, err := c.node(item, path+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yamlv3.ScalarNode:
		return scalar(n)
	}
	return nil, nil
}

// mapping fills m from n, expanding "<<" merge keys. Explicit keys win over
// merged ones regardless of position.
func (c converter) mapping(m *Object, n *yamlv3.Node, path string, depth int, seen map[string][2]int) error {
	var merges []*yamlv3.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yamlv3.ScalarNode && k.Tag == "!!merge" {
			merges = append(merges, v)
			continue
		}
		key := k.Value
		childPath := path + "/" + escape(key)
		if pos, dup := seen[key]; dup && !c.opt.AllowDuplicateKeys {
			return &DuplicateKeyError{Key: key, Path: childPath, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
		}
		seen[key] = [2]int{k.Line, k.Column}
		val, err := c.node(v, childPath, depth)
		if err != nil {
			return err
		}
		m.Set(key, val)
	}
	for _, src := range merges {
		if src.Kind == yamlv3.AliasNode {
			src = src.Alias
		}
		sources := []*yamlv3.Node{src}
		if src.Kind == yamlv3.SequenceNode {
			sources = src.Content
		}
		for _, s := range sources {
			if s.Kind == yamlv3.AliasNode {
				s = s.Alias
			}
			if s.Kind != yamlv3.MappingNode {
				return fmt.Errorf("YAML merge at %d:%d needs a mapping", s.Line, s.Column)
			}
			merged := orderedmap.New[string, any]()
			if err := c.mapping(merged, s, path, depth, map[string][2]int{}); err != nil {
				return err
			}
			for pair := merged.Oldest(); pair != nil; pair = pair.Next() {
				if _, ok := m.Get(pair.Key); !ok {
					m.Set(pair.Key, pair.Value)
				}
			}
		}
	}
	return nil
}

func (c converter) checkDepth(path string, depth int) error {
	if c.opt.MaxDepth > 0 && depth > c.opt.MaxDepth {
		if path == "" {
			path = "/"
		}
		return &DepthError{Path: path, Max: c.opt.MaxDepth}
	}
	return nil
}

func scalar(n *yamlv3.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return n.Value, nil
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return float64(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return float64(u), nil
		}
		return n.Value, nil
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".inf", "+.inf":
			return math.Inf(1), nil
		case "-.inf":
			return math.Inf(-1), nil
		case ".nan":
			return math.NaN(), nil
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64); err == nil {
			return f, nil
		}
		return n.Value, nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return n.Value, nil
		}
		return t, nil
	default:
		return n.Value, nil
	}
}

func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}
