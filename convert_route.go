package swagdoc

import "github.com/reoring/swagdoc/oas"

// ConvertRoute converts a decoded route into a path item fragment keyed by
// path, then method.
func ConvertRoute(r Route, opts ...ConvertOpt) oas.PathItems {
	opt := convertOpt(opts)
	op := &oas.Operation{
		Tags:        []string{r.Tag},
		Summary:     r.Summary,
		Description: r.Description,
		Responses:   make(map[int]*oas.Response, len(r.Responses)),
	}
	if opt.Profile == ProfileShorthand {
		op.Consumes = []string{oas.MediaTypeJSON}
	}

	if r.PathVariables != nil || r.QueryVariables != nil {
		op.Parameters = []oas.Parameter{}
		if r.PathVariables != nil {
			for pair := r.PathVariables.Oldest(); pair != nil; pair = pair.Next() {
				op.Parameters = append(op.Parameters, parameter("path", pair.Key, pair.Value, true, opt))
			}
		}
		if r.QueryVariables != nil {
			for pair := r.QueryVariables.Oldest(); pair != nil; pair = pair.Next() {
				op.Parameters = append(op.Parameters, parameter("query", pair.Key, pair.Value, pair.Value.Common().Required, opt))
			}
		}
	}

	if r.Body != nil && r.Method.AcceptsBody() {
		op.RequestBody = &oas.RequestBody{Content: oas.JSONContent(convertSchema(r.Body, opt))}
	}

	for code, rr := range r.Responses {
		op.Responses[code] = convertResponse(rr, opt)
	}

	return oas.PathItems{r.Path: oas.PathItem{string(r.Method): op}}
}

// parameter renders a path or query variable. The shorthand profile keeps
// only the kind name as schema; openapi3 carries the full converted schema.
func parameter(in, name string, v Variable, required bool, opt ConvertOpt) oas.Parameter {
	p := oas.Parameter{In: in, Name: name, Description: v.Common().Description, Required: required}
	if opt.Profile == ProfileOpenAPI3 {
		s := convertVariable(v, opt)
		s.Description = ""
		p.Schema = s
		return p
	}
	p.Schema = &oas.Schema{Type: string(v.Kind())}
	return p
}

func convertResponse(rr RequestResponse, opt ConvertOpt) *oas.Response {
	out := &oas.Response{Description: rr.Description}
	if rr.Response == nil {
		return out
	}
	s := convertSchema(rr.Response, opt)
	switch {
	case opt.Profile == ProfileOpenAPI3:
		out.Content = oas.JSONContent(s)
	case isComposite(rr.Response):
		out.Alternatives = s
	default:
		out.Response = s
	}
	return out
}

func isComposite(s Schema) bool {
	_, ok := s.(*Composite)
	return ok
}
