package swagdoc_test

import (
	"testing"

	"github.com/reoring/swagdoc"
	"github.com/reoring/swagdoc/oas"
)

// mustDoc decodes a JSON document or fails the test.
func mustDoc(t *testing.T, js string) *swagdoc.Object {
	t.Helper()
	doc, err := swagdoc.ParseDocument(swagdoc.JSONBytes([]byte(js)))
	if err != nil {
		t.Fatalf("parse %s: %v", js, err)
	}
	return doc
}

// compact renders v as compact JSON in tree order.
func compact(t *testing.T, v any) string {
	t.Helper()
	b, err := oas.EncodeJSON(v, "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(b)
}

// expectIssue asserts err is a single Issue with code at path.
func expectIssue(t *testing.T, err error, code, path string) {
	t.Helper()
	iss, ok := swagdoc.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues (%s at %s), got %v", code, path, err)
	}
	if len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", iss)
	}
	if iss[0].Code != code || iss[0].Path != path {
		t.Fatalf("expected %s at %s, got %s at %s (%s)", code, path, iss[0].Code, iss[0].Path, iss[0].Message)
	}
	if iss[0].Message == "" {
		t.Fatalf("expected a message for %s", code)
	}
}
