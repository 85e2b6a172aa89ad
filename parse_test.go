package swagdoc_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/swagdoc"
)

func TestParseDocument_JSONDuplicateKey(t *testing.T) {
	src := []byte(`{"a":1,"b":{"c":1,"c":2}}`)

	_, err := swagdoc.ParseDocument(swagdoc.JSONBytes(src))
	if !swagdoc.HasCode(err, swagdoc.CodeDuplicateKey) {
		t.Fatalf("expected duplicate_key by default, got %v", err)
	}
	iss, _ := swagdoc.AsIssues(err)
	if iss[0].Path != "/b/c" {
		t.Fatalf("expected path /b/c, got %s", iss[0].Path)
	}

	var seen []swagdoc.Issue
	doc, err := swagdoc.ParseDocument(swagdoc.JSONBytes(src), swagdoc.ParseOpt{
		OnDuplicateKey: swagdoc.Warn,
		OnIssue:        func(it swagdoc.Issue) { seen = append(seen, it) },
	})
	if err != nil {
		t.Fatalf("warn should tolerate duplicates: %v", err)
	}
	if len(seen) != 1 || seen[0].Code != swagdoc.CodeDuplicateKey {
		t.Fatalf("expected one reported duplicate, got %v", seen)
	}
	if got := compact(t, doc); got != `{"a":1,"b":{"c":2}}` {
		t.Fatalf("expected last value to win, got %s", got)
	}

	if _, err := swagdoc.ParseDocument(swagdoc.JSONBytes(src), swagdoc.ParseOpt{OnDuplicateKey: swagdoc.Ignore}); err != nil {
		t.Fatalf("ignore should tolerate duplicates: %v", err)
	}
}

func TestParseDocument_YAMLDuplicateKey(t *testing.T) {
	src := []byte("a: 1\nb:\n  c: 1\n  c: 2\n")
	_, err := swagdoc.ParseDocument(swagdoc.YAMLBytes(src))
	expectIssue(t, err, swagdoc.CodeDuplicateKey, "/b/c")

	doc, err := swagdoc.ParseDocument(swagdoc.YAMLBytes(src), swagdoc.ParseOpt{OnDuplicateKey: swagdoc.Ignore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := compact(t, doc); got != `{"a":1,"b":{"c":2}}` {
		t.Fatalf("unexpected document: %s", got)
	}
}

func TestParseDocument_MaxDepth(t *testing.T) {
	deep := `{"a":{"b":{"c":{"d":1}}}}`
	_, err := swagdoc.ParseDocument(swagdoc.JSONBytes([]byte(deep)), swagdoc.ParseOpt{MaxDepth: 2})
	if !swagdoc.HasCode(err, swagdoc.CodeTooDeep) {
		t.Fatalf("expected too_deep for JSON, got %v", err)
	}
	_, err = swagdoc.ParseDocument(swagdoc.YAMLBytes([]byte(deep)), swagdoc.ParseOpt{MaxDepth: 2})
	if !swagdoc.HasCode(err, swagdoc.CodeTooDeep) {
		t.Fatalf("expected too_deep for YAML, got %v", err)
	}
	if _, err := swagdoc.ParseDocument(swagdoc.JSONBytes([]byte(deep))); err != nil {
		t.Fatalf("no limit by default: %v", err)
	}
}

func TestParseDocument_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  swagdoc.Source
		code string
	}{
		{"truncated json", swagdoc.JSONBytes([]byte(`{"a":`)), swagdoc.CodeParseError},
		{"trailing data", swagdoc.JSONBytes([]byte(`{} {}`)), swagdoc.CodeParseError},
		{"empty json", swagdoc.JSONBytes(nil), swagdoc.CodeParseError},
		{"top-level array", swagdoc.JSONBytes([]byte(`[1]`)), swagdoc.CodeStructural},
		{"top-level yaml scalar", swagdoc.YAMLBytes([]byte("hello\n")), swagdoc.CodeStructural},
		{"broken yaml", swagdoc.YAMLBytes([]byte("a: [1\n")), swagdoc.CodeParseError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := swagdoc.ParseDocument(tc.src)
			if !swagdoc.HasCode(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

// The same route written in YAML and JSON converts to the same fragment.
func TestParseDocument_YAMLMatchesJSON(t *testing.T) {
	yml := `
simplified: true
path: /users/:id
method: put
tag: users
summary: Update user
description: Updates a user
pathVariables:
  id: {type: integer, description: user id, example: 1}
queryVariables:
  dry: {type: boolean, description: dry run, required: false, example: true}
body:
  name: {type: string, description: name, required: true, example: bob}
responses:
  404:
    description: not found
  200:
    description: ok
    response:
      name: {type: string, description: name, required: true, example: bob}
`
	fromYAML, err := swagdoc.ParseDocument(swagdoc.YAMLReader(strings.NewReader(yml)))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	a, err := swagdoc.ConvertRouteDocument(fromYAML)
	if err != nil {
		t.Fatalf("convert yaml: %v", err)
	}
	b, err := swagdoc.ConvertRouteDocument(mustDoc(t, userRoute))
	if err != nil {
		t.Fatalf("convert json: %v", err)
	}
	if diff := cmp.Diff(compact(t, b), compact(t, a)); diff != "" {
		t.Fatalf("yaml and json disagree (-json +yaml):\n%s", diff)
	}
}

func TestParseDocument_YAMLTimestampExample(t *testing.T) {
	yml := "type: date\ndescription: born\nrequired: true\nexample: 2020-01-02\n"
	doc, err := swagdoc.ParseDocument(swagdoc.YAMLBytes([]byte(yml)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := swagdoc.DecodeVariable(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := v.(*swagdoc.DateVariable).Example; got != "2020-01-02T00:00:00Z" {
		t.Fatalf("unexpected example %q", got)
	}
}
