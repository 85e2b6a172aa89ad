package oas

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Schema {
	minLen := 1
	return &Schema{
		Type:        "object",
		Description: "root",
		Properties: func() *SchemaMap {
			p := NewSchemaMap()
			p.Set("zeta", &Schema{Type: "string", Description: "z", Example: "x", MinLength: &minLen})
			p.Set("alpha", &Schema{Ref: "#/components/schemas/A", Description: "ignored"})
			return p
		}(),
		Required: []string{"zeta"},
	}
}

func TestSchemaTree_KeyOrder(t *testing.T) {
	got, err := EncodeJSON(sample(), "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"type":"object","description":"root","properties":{"zeta":{"type":"string","description":"z","example":"x","minLength":1},"alpha":{"$ref":"#/components/schemas/A"}},"required":["zeta"]}`
	if string(got) != want {
		t.Fatalf("mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestSchemaTree_RequiredNilVersusEmpty(t *testing.T) {
	s := &Schema{Type: "object", Properties: NewSchemaMap()}
	if got, _ := EncodeJSON(s, ""); string(got) != `{"type":"object","properties":{}}` {
		t.Fatalf("nil required should be omitted, got %s", got)
	}
	s.Required = []string{}
	if got, _ := EncodeJSON(s, ""); string(got) != `{"type":"object","properties":{},"required":[]}` {
		t.Fatalf("empty required should render as [], got %s", got)
	}
}

func TestSchemaTree_ExclusiveForms(t *testing.T) {
	five := 5.0
	s := &Schema{Type: "number", Maximum: &five, ExclusiveMax: true}
	if got, _ := EncodeJSON(s, ""); string(got) != `{"type":"number","maximum":5,"exclusiveMaximum":true}` {
		t.Fatalf("unexpected boolean form: %s", got)
	}
	s = &Schema{Type: "number", ExclusiveMaximum: &five}
	if got, _ := EncodeJSON(s, ""); string(got) != `{"type":"number","exclusiveMaximum":5}` {
		t.Fatalf("unexpected numeric form: %s", got)
	}
}

func TestSchemaTree_ExtensionsOverride(t *testing.T) {
	ext := NewMap()
	ext.Set("x-order", 1)
	ext.Set("type", "string")
	s := &Schema{Type: "password", Description: "p", Extensions: ext}
	got, _ := EncodeJSON(s, "")
	if string(got) != `{"type":"string","description":"p","x-order":1}` {
		t.Fatalf("unexpected extensions rendering: %s", got)
	}
}

func TestEncodeJSON_Indent(t *testing.T) {
	m := NewMap()
	m.Set("b", []any{1, "two"})
	m.Set("a", map[string]any{"y": true, "x": nil})
	m.Set("e", []any{})
	got, err := EncodeJSON(m, "  ")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := strings.Join([]string{
		`{`,
		`  "b": [`,
		`    1,`,
		`    "two"`,
		`  ],`,
		`  "a": {`,
		`    "x": null,`,
		`    "y": true`,
		`  },`,
		`  "e": []`,
		`}`,
	}, "\n")
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("indent mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML_Operation(t *testing.T) {
	op := &Operation{
		Tags:        []string{"users"},
		Summary:     "List",
		Description: "Lists users",
		Responses: map[int]*Response{
			404: {Description: "missing"},
			200: {Description: "ok", Content: JSONContent(&Schema{Ref: "#/components/schemas/User"})},
		},
	}
	got, err := EncodeYAML(PathItems{"/users": PathItem{"get": op}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `/users:
  get:
    tags:
      - users
    summary: List
    description: Lists users
    responses:
      "200":
        description: ok
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/User'
      "404":
        description: missing
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestPathItem_Methods(t *testing.T) {
	p := PathItem{"delete": {}, "post": {}, "get": {}, "put": {}, "patch": {}}
	got := p.Methods()
	want := []string{"get", "put", "post", "delete", "patch"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("method order (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON_UsesTreeOrder(t *testing.T) {
	b, err := sample().MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.HasPrefix(string(b), `{"type":"object","description":"root","properties"`) {
		t.Fatalf("unexpected order: %s", b)
	}
}

func TestEncodeYAML_NestedMapsKeepInsertionOrder(t *testing.T) {
	inner := NewMap()
	inner.Set("zeta", 1)
	inner.Set("alpha", "a")
	m := NewMap()
	m.Set("200", []any{inner})
	m.Set("b", map[string]any{"q": 2, "p": 1})
	got, err := EncodeYAML(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `"200":
  - zeta: 1
    alpha: a
b:
  p: 1
  q: 2
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}
