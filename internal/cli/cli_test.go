package cli

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const routeDoc = `{"simplified":true,"path":"/pets/:id","method":"get","tag":"pets","summary":"Get pet","description":"Returns a pet",
	"pathVariables":{"id":{"type":"integer","description":"pet id","example":1}},
	"responses":{"200":{"description":"ok","response":{"type":"oneOf","subSchemas":[{"type":"ref","description":"pet","required":true,"ref":"#/components/schemas/Pet"}]}}}}`

const entityDoc = "simplified: true\nname: Pet\nschema:\n  name: {type: string, description: name, required: true, example: rex}\n"

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testConfig(t *testing.T, root string, overrides map[string]any) Config {
	t.Helper()
	o := map[string]any{"path": root}
	for k, v := range overrides {
		o[k] = v
	}
	cfg, err := LoadConfig("", false, o)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestLoadConfig_Layers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "swagdoc.yml")
	body := "path: docs\nformat: yaml\nworkers: 3\ndebounce: 1s\nbundle:\n  info:\n    title: Pets\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(file, true, map[string]any{"workers": 5})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Path != "docs" || cfg.Format != "yaml" || cfg.Workers != 5 {
		t.Fatalf("unexpected layering: %+v", cfg)
	}
	if cfg.ReadExt != ".doc.json" || cfg.WriteExt != ".doc.js" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Debounce != time.Second {
		t.Fatalf("expected 1s debounce, got %v", cfg.Debounce)
	}
	if cfg.Bundle.Info.Title != "Pets" || cfg.Bundle.Info.Version != "1.0.0" {
		t.Fatalf("unexpected bundle info: %+v", cfg.Bundle.Info)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")
	if _, err := LoadConfig(missing, false, nil); err != nil {
		t.Fatalf("optional config should be skipped: %v", err)
	}
	if _, err := LoadConfig(missing, true, nil); err == nil {
		t.Fatalf("explicit config must exist")
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []map[string]any{
		{"writeExtension": ".doc.json"},
		{"format": "xml"},
		{"profile": "swagger2"},
		{"workers": 0},
		{"regex": "("},
	}
	for _, o := range cases {
		if _, err := LoadConfig("", false, o); err == nil {
			t.Fatalf("%v: expected validation error", o)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b/user.doc.json":  "{}",
		"a/pet.doc.json":   "{}",
		"a/pet.doc.js":     "",
		"a/notes.json":     "{}",
		"c/order.doc.json": "{}",
	})
	got, err := Discover(root, ".doc.json", nil)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{
		filepath.Join(root, "a/pet.doc.json"),
		filepath.Join(root, "b/user.doc.json"),
		filepath.Join(root, "c/order.doc.json"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("discover (-want +got):\n%s", diff)
	}

	got, err = Discover(root, ".doc.json", regexp.MustCompile(`^(pet|order)\.`))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected regex to keep two files, got %v", got)
	}
}

func TestOutputPath(t *testing.T) {
	got, err := OutputPath(filepath.Join("x", "pet.doc.json"), ".doc.json", ".doc.js")
	if err != nil || got != filepath.Join("x", "pet.doc.js") {
		t.Fatalf("got %q, %v", got, err)
	}
	// only the base name is rewritten
	got, err = OutputPath(filepath.Join("a.doc.json", "b.doc.json"), ".doc.json", ".yaml")
	if err != nil || got != filepath.Join("a.doc.json", "b.yaml") {
		t.Fatalf("got %q, %v", got, err)
	}
	if _, err := OutputPath("pet.json", ".doc.json", ".doc.js"); err == nil {
		t.Fatalf("expected error when the read extension is absent")
	}
}

func TestRunner_Convert(t *testing.T) {
	root := writeTree(t, map[string]string{
		"routes/pet.doc.json":   routeDoc,
		"entities/pet.doc.yaml": entityDoc,
		"raw/plain.doc.json":    `{"/x":{"get":{"responses":{"200":{"description":"ok"}}}}}`,
	})
	cfg := testConfig(t, root, map[string]any{"readExtension": ".doc.", "writeExtension": ".swagger."})
	r := NewRunner(cfg, nil)
	res, err := r.Convert(context.Background())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Files != 3 || res.Written != 2 || res.Skipped != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	out, err := os.ReadFile(filepath.Join(root, "routes/pet.swagger.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "/**\n* @swagger\n* /pets/:id:\n*   get:\n") || !strings.HasSuffix(s, "*/\n") {
		t.Fatalf("unexpected jsdoc:\n%s", s)
	}
	if _, err := os.Stat(filepath.Join(root, "entities/pet.swagger.yaml")); err != nil {
		t.Fatalf("entity output missing: %v", err)
	}
	plain, err := os.ReadFile(filepath.Join(root, "raw/plain.swagger.json"))
	if err != nil {
		t.Fatalf("pass-through output missing: %v", err)
	}
	if !strings.Contains(string(plain), "* /x:") {
		t.Fatalf("pass-through should render the document as is:\n%s", plain)
	}
}

func TestRunner_CollectsEveryFailure(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ok.doc.json":     routeDoc,
		"bad1.doc.json":   `{"simplified":true,"path":"/p","method":"patch"}`,
		"bad2.doc.json":   `{"simplified":true,"name":"X"}`,
		"broken.doc.json": `{"simplified":`,
	})
	r := NewRunner(testConfig(t, root, map[string]any{"workers": 2}), nil)
	res, err := r.Check(context.Background())
	if err == nil {
		t.Fatalf("expected failures")
	}
	if res.Written != 1 {
		t.Fatalf("expected one valid file, got %+v", res)
	}
	for _, name := range []string{"bad1.doc.json", "bad2.doc.json", "broken.doc.json"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error should mention %s: %v", name, err)
		}
	}
	if _, statErr := os.Stat(filepath.Join(root, "ok.doc.js")); !os.IsNotExist(statErr) {
		t.Fatalf("check must not write outputs")
	}
}

func TestRunner_Bundle(t *testing.T) {
	root := writeTree(t, map[string]string{
		"pet.doc.json":        routeDoc,
		"pet-entity.doc.yaml": entityDoc,
	})
	out := filepath.Join(t.TempDir(), "openapi.json")
	cfg := testConfig(t, root, map[string]any{"readExtension": ".doc.", "bundle.output": out})
	if _, err := NewRunner(cfg, nil).Bundle(context.Background()); err != nil {
		t.Fatalf("bundle: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read bundle: %v", err)
	}
	for _, want := range []string{`"openapi": "3.0.3"`, `"/pets/{id}"`, `"Pet"`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("bundle should contain %s:\n%s", want, b)
		}
	}
}
