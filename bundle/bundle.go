// Package bundle merges converted route and entity fragments into a single
// OpenAPI 3 document and lints it with kin-openapi.
package bundle

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/reoring/swagdoc/oas"
)

// OpenAPIVersion is the version written to bundled documents.
const OpenAPIVersion = "3.0.3"

// Info is the document's info object.
type Info struct {
	Title       string `koanf:"title"`
	Version     string `koanf:"version"`
	Description string `koanf:"description"`
}

// DuplicateError reports a path+method or component name added twice.
type DuplicateError struct {
	What string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("bundle: duplicate %s %q", e.What, e.Key)
}

// Builder accumulates fragments. It is safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	paths   oas.PathItems
	schemas oas.Components
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{paths: oas.PathItems{}, schemas: oas.Components{}}
}

// AddRoute merges a route fragment. Express-style ":param" segments are
// rewritten to "{param}".
func (b *Builder) AddRoute(p oas.PathItems) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, path := range p.Paths() {
		key := OpenAPIPath(path)
		item := b.paths[key]
		for _, method := range p[path].Methods() {
			if _, dup := item[method]; dup {
				return &DuplicateError{What: "operation", Key: method + " " + key}
			}
		}
		if item == nil {
			item = oas.PathItem{}
			b.paths[key] = item
		}
		for method, op := range p[path] {
			item[method] = op
		}
	}
	return nil
}

// AddEntity merges an entity fragment.
func (b *Builder) AddEntity(c oas.Components) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, name := range c.Names() {
		if _, dup := b.schemas[name]; dup {
			return &DuplicateError{What: "component", Key: name}
		}
	}
	for name, s := range c {
		b.schemas[name] = s
	}
	return nil
}

// Len returns the number of operations and component schemas added.
func (b *Builder) Len() (operations, components int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, item := range b.paths {
		operations += len(item)
	}
	return operations, len(b.schemas)
}

// Document renders the bundled OpenAPI document.
func (b *Builder) Document(info Info) *oas.Map {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc := oas.NewMap()
	doc.Set("openapi", OpenAPIVersion)
	i := oas.NewMap()
	i.Set("title", info.Title)
	i.Set("version", info.Version)
	if info.Description != "" {
		i.Set("description", info.Description)
	}
	doc.Set("info", i)
	doc.Set("paths", b.paths.Tree())
	components := oas.NewMap()
	components.Set("schemas", b.schemas.Tree())
	doc.Set("components", components)
	return doc
}

// Validate loads the bundled document with kin-openapi and validates it.
// Example validation is disabled: shorthand examples are illustrative.
func (b *Builder) Validate(ctx context.Context, info Info) error {
	return Validate(ctx, b.Document(info))
}

// Validate lints an OpenAPI document tree.
func Validate(ctx context.Context, doc *oas.Map) error {
	raw, err := oas.EncodeJSON(doc, "")
	if err != nil {
		return fmt.Errorf("bundle: encode: %w", err)
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return fmt.Errorf("bundle: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("bundle: validate: %w", err)
	}
	return nil
}

var expressParam = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// OpenAPIPath rewrites "/users/:id" to "/users/{id}".
func OpenAPIPath(path string) string {
	return expressParam.ReplaceAllString(path, "{$1}")
}
