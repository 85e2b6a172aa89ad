package oas

import (
	"sort"
	"strconv"
)

// MediaTypeJSON is the only media type the converters emit.
const MediaTypeJSON = "application/json"

// Parameter is a path or query parameter.
type Parameter struct {
	In          string
	Name        string
	Description string
	Schema      *Schema
	Required    bool
}

// Tree renders p as an ordered map.
func (p Parameter) Tree() *Map {
	out := NewMap()
	out.Set("in", p.In)
	out.Set("name", p.Name)
	out.Set("description", p.Description)
	out.Set("schema", p.Schema.Tree())
	out.Set("required", p.Required)
	return out
}

// MediaType wraps the schema of one content entry.
type MediaType struct {
	Schema *Schema
}

// Content maps a media type to its entry.
type Content map[string]MediaType

// JSONContent returns content with a single application/json entry.
func JSONContent(s *Schema) Content {
	return Content{MediaTypeJSON: {Schema: s}}
}

// Tree renders c with media types sorted.
func (c Content) Tree() *Map {
	out := NewMap()
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		mt := NewMap()
		mt.Set("schema", c[k].Schema.Tree())
		out.Set(k, mt)
	}
	return out
}

// RequestBody is an operation's request body.
type RequestBody struct {
	Content Content
}

// Tree renders b as an ordered map.
func (b *RequestBody) Tree() *Map {
	out := NewMap()
	out.Set("content", b.Content.Tree())
	return out
}

// Response is one entry of Operation.Responses. The shorthand rendering
// carries its payload either under "response" (object payloads) or inline
// as combinator keys (Alternatives); the OpenAPI 3 rendering uses Content.
type Response struct {
	Description  string
	Response     *Schema
	Alternatives *Schema
	Content      Content
}

// Tree renders r as an ordered map.
func (r *Response) Tree() *Map {
	out := NewMap()
	out.Set("description", r.Description)
	if r.Response != nil {
		out.Set("response", r.Response.Tree())
	}
	if r.Alternatives != nil {
		for pair := r.Alternatives.Tree().Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value)
		}
	}
	if r.Content != nil {
		out.Set("content", r.Content.Tree())
	}
	return out
}

// Operation is a single path+method entry.
type Operation struct {
	Tags        []string
	Summary     string
	Description string
	// Consumes is omitted when nil.
	Consumes []string
	// Parameters is omitted when nil; a non-nil empty list renders as [].
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   map[int]*Response
}

// StatusCodes returns the response codes in ascending order.
func (o *Operation) StatusCodes() []int {
	codes := make([]int, 0, len(o.Responses))
	for code := range o.Responses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Tree renders o as an ordered map.
func (o *Operation) Tree() *Map {
	out := NewMap()
	out.Set("tags", append([]string{}, o.Tags...))
	out.Set("summary", o.Summary)
	out.Set("description", o.Description)
	if o.Consumes != nil {
		out.Set("consumes", append([]string{}, o.Consumes...))
	}
	if o.Parameters != nil {
		params := make([]any, len(o.Parameters))
		for i, p := range o.Parameters {
			params[i] = p.Tree()
		}
		out.Set("parameters", params)
	}
	if o.RequestBody != nil {
		out.Set("requestBody", o.RequestBody.Tree())
	}
	responses := NewMap()
	for _, code := range o.StatusCodes() {
		responses.Set(strconv.Itoa(code), o.Responses[code].Tree())
	}
	out.Set("responses", responses)
	return out
}

// MarshalJSON renders the operation with its keys in Tree order.
func (o *Operation) MarshalJSON() ([]byte, error) { return EncodeJSON(o.Tree(), "") }

// MarshalYAML renders the operation with its keys in Tree order.
func (o *Operation) MarshalYAML() (any, error) { return o.Tree(), nil }

// methodOrder is the order operations are listed within a path item.
var methodOrder = map[string]int{"get": 0, "put": 1, "post": 2, "delete": 3}

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]*Operation

// Methods returns the methods of p in get, put, post, delete order, then any
// other method alphabetically.
func (p PathItem) Methods() []string {
	out := make([]string, 0, len(p))
	for m := range p {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, iok := methodOrder[out[i]]
		oj, jok := methodOrder[out[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		}
		return out[i] < out[j]
	})
	return out
}

// Tree renders p as an ordered map.
func (p PathItem) Tree() *Map {
	out := NewMap()
	for _, m := range p.Methods() {
		out.Set(m, p[m].Tree())
	}
	return out
}

// PathItems maps a path template to its operations. A converted route
// yields exactly one path with one method.
type PathItems map[string]PathItem

// Paths returns the path templates in lexical order.
func (p PathItems) Paths() []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tree renders p as an ordered map.
func (p PathItems) Tree() *Map {
	out := NewMap()
	for _, path := range p.Paths() {
		out.Set(path, p[path].Tree())
	}
	return out
}

// MarshalJSON renders the paths with their keys in Tree order.
func (p PathItems) MarshalJSON() ([]byte, error) { return EncodeJSON(p.Tree(), "") }

// MarshalYAML renders the paths with their keys in Tree order.
func (p PathItems) MarshalYAML() (any, error) { return p.Tree(), nil }

// Components maps a component schema name to its schema.
type Components map[string]*Schema

// Names returns the component names in lexical order.
func (c Components) Names() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Tree renders c as an ordered map.
func (c Components) Tree() *Map {
	out := NewMap()
	for _, name := range c.Names() {
		out.Set(name, c[name].Tree())
	}
	return out
}

// MarshalJSON renders the components with their keys in Tree order.
func (c Components) MarshalJSON() ([]byte, error) { return EncodeJSON(c.Tree(), "") }

// MarshalYAML renders the components with their keys in Tree order.
func (c Components) MarshalYAML() (any, error) { return c.Tree(), nil }
