package swagdoc

// SimplifiedKey marks a document written in shorthand form.
const SimplifiedKey = "simplified"

// IsSimplified reports whether doc carries "simplified": true.
func IsSimplified(doc any) bool {
	m, ok := asMapping(doc)
	if !ok {
		return false
	}
	v, _ := m.get(SimplifiedKey)
	b, _ := v.(bool)
	return b
}

// ConvertRouteDocument converts a shorthand route document into its path
// fragment. Documents without "simplified": true are returned unchanged and
// unvalidated, since they are assumed to be OpenAPI already.
func ConvertRouteDocument(doc *Object, opts ...ConvertOpt) (*Object, error) {
	if !IsSimplified(doc) {
		return doc, nil
	}
	r, err := DecodeRoute(doc)
	if err != nil {
		return nil, err
	}
	return ConvertRoute(r, opts...).Tree(), nil
}

// ConvertEntityDocument converts a shorthand entity document into its
// component schema fragment, or returns doc unchanged when it is not
// simplified.
func ConvertEntityDocument(doc *Object, opts ...ConvertOpt) (*Object, error) {
	if !IsSimplified(doc) {
		return doc, nil
	}
	e, err := DecodeEntity(doc)
	if err != nil {
		return nil, err
	}
	return ConvertEntity(e, opts...).Tree(), nil
}

// DocumentKind tells routes from entities.
type DocumentKind int

const (
	DocumentUnknown DocumentKind = iota
	DocumentRoute
	DocumentEntity
)

func (k DocumentKind) String() string {
	switch k {
	case DocumentRoute:
		return "route"
	case DocumentEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// DetectKind classifies a document: "method" or "path" makes a route,
// "name" together with "schema" an entity.
func DetectKind(doc *Object) DocumentKind {
	m, ok := asMapping(doc)
	if !ok {
		return DocumentUnknown
	}
	if _, ok := m.get("method"); ok {
		return DocumentRoute
	}
	if _, ok := m.get("path"); ok {
		return DocumentRoute
	}
	_, hasName := m.get("name")
	_, hasSchema := m.get("schema")
	if hasName && hasSchema {
		return DocumentEntity
	}
	return DocumentUnknown
}

// ConvertDocument dispatches on DetectKind. Documents that are not
// simplified come back unchanged whatever their shape.
func ConvertDocument(doc *Object, opts ...ConvertOpt) (*Object, DocumentKind, error) {
	kind := DetectKind(doc)
	if !IsSimplified(doc) {
		return doc, kind, nil
	}
	var (
		out *Object
		err error
	)
	switch kind {
	case DocumentRoute:
		out, err = ConvertRouteDocument(doc, opts...)
	case DocumentEntity:
		out, err = ConvertEntityDocument(doc, opts...)
	default:
		return nil, kind, fail(RootPath(), CodeStructural, "field", "route or entity document")
	}
	return out, kind, err
}
