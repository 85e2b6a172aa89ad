package swagdoc

import (
	"bytes"
	"io"

	eng "github.com/reoring/swagdoc/internal/engine"
	"github.com/reoring/swagdoc/source/gojson"
	yamlsrc "github.com/reoring/swagdoc/source/yaml"
)

// Source abstracts over the supported document encodings.
type Source interface {
	// Decode reads one document into a raw tree.
	Decode(opt ParseOpt) (any, error)
	// Format names the encoding ("json" or "yaml").
	Format() string
}

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// YAMLReader wraps an io.Reader as a YAML Source. Only the first document of
// a multi-document stream is read.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Format() string { return "json" }

func (s jsonSource) Decode(opt ParseOpt) (any, error) {
	src := eng.WrapWithEnforcement(gojson.NewReader(s.r), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   opt.issueSink(),
	})
	return eng.DecodeDocument(src)
}

type yamlSource struct{ r io.Reader }

func (s yamlSource) Format() string { return "yaml" }

func (s yamlSource) Decode(opt ParseOpt) (any, error) {
	r := yamlsrc.NewReader(s.r, yamlsrc.Options{
		AllowDuplicateKeys: opt.OnDuplicateKey != Error,
		MaxDepth:           opt.MaxDepth,
	})
	v, err := r.Next()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return v, err
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Ignore:
		return eng.DupIgnore
	default:
		return eng.DupError
	}
}
