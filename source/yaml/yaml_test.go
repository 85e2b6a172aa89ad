package yaml

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"
)

func TestReader_DuplicateKey_Root(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("kind: A\nkind: B\n")), Options{})
	_, err := r.Next()
	var de *DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "kind" || de.Path != "/kind" {
		t.Fatalf("unexpected error: %+v", de)
	}
	if de.FirstLine != 1 || de.Line != 2 {
		t.Fatalf("expected lines 1 and 2, got first=%d dup=%d", de.FirstLine, de.Line)
	}
}

func TestReader_DuplicateKey_Nested(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("schema:\n  a/b: 1\n  a/b: 2\n")), Options{})
	_, err := r.Next()
	var de *DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Path != "/schema/a~1b" {
		t.Fatalf("expected escaped pointer, got %q", de.Path)
	}
}

func TestReader_AllowDuplicateKeys_LastWins(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("a: 1\nb: 2\na: 3\n")), Options{AllowDuplicateKeys: true})
	v, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(*Object)
	if m.Oldest().Key != "a" {
		t.Fatalf("expected a to keep its first position")
	}
	if got, _ := m.Get("a"); got != float64(3) {
		t.Fatalf("expected a=3, got %v", got)
	}
}

func TestReader_Scalars(t *testing.T) {
	y := "i: 7\nf: 1.5\nb: true\nn: null\ns: hello\nq: \"42\"\ninf: .inf\nts: 2020-01-02\n"
	v, err := NewReader(bytes.NewReader([]byte(y)), Options{}).Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m := v.(*Object)
	get := func(k string) any { x, _ := m.Get(k); return x }
	if get("i") != float64(7) || get("f") != 1.5 || get("b") != true || get("n") != nil {
		t.Fatalf("unexpected scalars: i=%v f=%v b=%v n=%v", get("i"), get("f"), get("b"), get("n"))
	}
	if get("s") != "hello" || get("q") != "42" {
		t.Fatalf("unexpected strings: s=%v q=%v", get("s"), get("q"))
	}
	if f, ok := get("inf").(float64); !ok || !math.IsInf(f, 1) {
		t.Fatalf("expected +Inf, got %v", get("inf"))
	}
	ts, ok := get("ts").(time.Time)
	if !ok || !ts.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected a timestamp, got %T %v", get("ts"), get("ts"))
	}
}

func TestReader_AnchorsAndMerge(t *testing.T) {
	y := "base: &b\n  type: string\n  required: true\nfield:\n  <<: *b\n  required: false\n  description: d\n"
	v, err := NewReader(bytes.NewReader([]byte(y)), Options{}).Next()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	f, _ := v.(*Object).Get("field")
	field := f.(*Object)
	if typ, _ := field.Get("type"); typ != "string" {
		t.Fatalf("expected merged type, got %v", typ)
	}
	if req, _ := field.Get("required"); req != false {
		t.Fatalf("explicit key should win over merged one, got %v", req)
	}
}

func TestReader_MaxDepth(t *testing.T) {
	y := "a:\n  b:\n    c: [1]\n"
	_, err := NewReader(bytes.NewReader([]byte(y)), Options{MaxDepth: 3}).Next()
	var de *DepthError
	if !errors.As(err, &de) {
		t.Fatalf("expected DepthError, got %T %v", err, err)
	}
	if de.Path != "/a/b/c" || de.Max != 3 {
		t.Fatalf("unexpected error: %+v", de)
	}
	if _, err := NewReader(bytes.NewReader([]byte(y)), Options{MaxDepth: 4}).Next(); err != nil {
		t.Fatalf("depth 4 should pass: %v", err)
	}
}

func TestReader_ReadAll_MultiDoc(t *testing.T) {
	docs, err := NewReader(bytes.NewReader([]byte("kind: A\n---\nkind: B\n")), Options{}).ReadAll()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
}
