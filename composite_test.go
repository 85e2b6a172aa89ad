package swagdoc_test

import (
	"testing"

	"github.com/reoring/swagdoc"
)

const refA = `{"type":"ref","description":"a","required":true,"ref":"#/components/schemas/A"}`

func TestDecodeSchema_Composite(t *testing.T) {
	js := `{"type":"oneOf","discriminator":"kind","subSchemas":[` + refA + `,
		{"id":{"type":"integer","description":"id","required":true,"example":1}}]}`
	s, err := swagdoc.DecodeSchema(mustDoc(t, js))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := s.(*swagdoc.Composite)
	if !ok {
		t.Fatalf("expected *Composite, got %T", s)
	}
	if c.Kind != swagdoc.KindOneOf || len(c.SubSchemas) != 2 || c.Discriminator != "kind" {
		t.Fatalf("unexpected composite: %+v", c)
	}
	if _, ok := c.SubSchemas[0].(*swagdoc.RefVariable); !ok {
		t.Fatalf("expected first alternative to be a ref, got %T", c.SubSchemas[0])
	}
	if _, ok := c.SubSchemas[1].(swagdoc.ImplicitObject); !ok {
		t.Fatalf("expected second alternative to be an implicit object, got %T", c.SubSchemas[1])
	}
}

func TestDecodeSchema_DiscriminatorOnlyForOneOf(t *testing.T) {
	js := `{"type":"anyOf","discriminator":"kind","subSchemas":[` + refA + `]}`
	s, err := swagdoc.DecodeSchema(mustDoc(t, js))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := s.(*swagdoc.Composite).Discriminator; d != "" {
		t.Fatalf("anyOf should not keep a discriminator, got %q", d)
	}
}

func TestDecodeSchema_Errors(t *testing.T) {
	cases := []struct {
		name string
		js   string
		code string
		path string
	}{
		{"missing subSchemas", `{"type":"allOf"}`, swagdoc.CodeMissingField, "/subSchemas"},
		{"subSchemas not an array", `{"type":"allOf","subSchemas":{}}`, swagdoc.CodeWrongType, "/subSchemas"},
		{"scalar entry", `{"type":"oneOf","subSchemas":[1]}`, swagdoc.CodeStructural, "/subSchemas/0"},
		{"bad ref entry", `{"type":"oneOf","subSchemas":[` + refA + `,{"type":"ref","description":"b","required":true,"ref":"B"}]}`, swagdoc.CodeInvalidRefFormat, "/subSchemas/1/ref"},
		{"bad implicit entry", `{"type":"oneOf","subSchemas":[{"id":{"type":"integer","description":"id","required":true}}]}`, swagdoc.CodeMissingField, "/subSchemas/0/id/example"},
		{"discriminator not a string", `{"type":"oneOf","discriminator":1,"subSchemas":[]}`, swagdoc.CodeWrongType, "/discriminator"},
		{"implicit object with bad variable", `{"id":{"type":"uuid","description":"id","required":true}}`, swagdoc.CodeUnknownVariableType, "/id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := swagdoc.DecodeSchema(mustDoc(t, tc.js))
			expectIssue(t, err, tc.code, tc.path)
		})
	}
}

func TestConvertSchema(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		profile swagdoc.Profile
		want    string
	}{
		{
			"implicit object gets a root wrapper",
			`{"id":{"type":"integer","description":"id","required":true,"example":1}}`,
			swagdoc.ProfileShorthand,
			`{"type":"object","description":"root","properties":{"id":{"type":"integer","description":"id","example":1}},"required":["id"]}`,
		},
		{
			"oneOf with discriminator",
			`{"type":"oneOf","discriminator":"kind","subSchemas":[` + refA + `,{"id":{"type":"integer","description":"id","required":true,"example":1}}]}`,
			swagdoc.ProfileShorthand,
			`{"oneOf":[{"$ref":"#/components/schemas/A"},{"type":"object","description":"root","properties":{"id":{"type":"integer","description":"id","example":1}},"required":["id"]}],"discriminator":{"propertyName":"kind"}}`,
		},
		{
			"allOf of refs",
			`{"type":"allOf","subSchemas":[` + refA + `,{"type":"ref","description":"b","required":true,"ref":"#/components/schemas/B"}]}`,
			swagdoc.ProfileShorthand,
			`{"allOf":[{"$ref":"#/components/schemas/A"},{"$ref":"#/components/schemas/B"}]}`,
		},
		{
			"anyOf wrapper drops empty required in openapi3",
			`{"type":"anyOf","subSchemas":[{"n":{"type":"number","description":"n","required":false,"example":1}}]}`,
			swagdoc.ProfileOpenAPI3,
			`{"anyOf":[{"type":"object","description":"root","properties":{"n":{"type":"number","description":"n","example":1}}}]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := swagdoc.DecodeSchema(mustDoc(t, tc.in))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			got := compact(t, swagdoc.ConvertSchema(s, swagdoc.ConvertOpt{Profile: tc.profile}))
			if got != tc.want {
				t.Fatalf("mismatch\n got: %s\nwant: %s", got, tc.want)
			}
		})
	}
}
