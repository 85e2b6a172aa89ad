package swagdoc

import (
	"errors"
	"strconv"

	eng "github.com/reoring/swagdoc/internal/engine"
	"github.com/reoring/swagdoc/i18n"
	yamlsrc "github.com/reoring/swagdoc/source/yaml"
)

// Severity selects how a decoding anomaly is treated.
type Severity int

const (
	// Error aborts decoding. It is the zero value.
	Error Severity = iota
	// Warn reports the anomaly through ParseOpt.OnIssue and keeps going.
	Warn
	// Ignore keeps going silently.
	Ignore
)

// ParseOpt tunes document decoding.
type ParseOpt struct {
	// OnDuplicateKey handles a key repeated within one mapping. When tolerated
	// the key keeps its first position and takes its last value. YAML
	// sources treat Warn like Ignore.
	OnDuplicateKey Severity
	// MaxDepth caps nesting; 0 disables the check.
	MaxDepth int
	// OnIssue receives tolerated anomalies.
	OnIssue func(Issue)
}

func (o ParseOpt) issueSink() func(eng.SimpleIssue) {
	if o.OnIssue == nil {
		return nil
	}
	return func(si eng.SimpleIssue) { o.OnIssue(fromEngineIssue(si)) }
}

// ParseDocument decodes a route or entity document. The top-level value must
// be a mapping. Decoding failures come back as Issues with code parse_error,
// duplicate_key or too_deep.
func ParseDocument(src Source, opts ...ParseOpt) (*Object, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := src.Decode(opt)
	if err != nil {
		return nil, toIssues(err)
	}
	switch t := v.(type) {
	case *Object:
		return t, nil
	case map[string]any:
		return cloneValue(t).(*Object), nil
	}
	return nil, fail(RootPath(), CodeStructural, "field", "document")
}

func toIssues(err error) Issues {
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{fromEngineIssue(ie.SimpleIssue)}
	}
	var de *yamlsrc.DuplicateKeyError
	if errors.As(err, &de) {
		return Issues{{
			Path:    de.Path,
			Code:    CodeDuplicateKey,
			Message: i18n.T(CodeDuplicateKey, map[string]string{"key": de.Key}),
			Cause:   err,
			Params:  map[string]any{"key": de.Key, "line": de.Line, "firstLine": de.FirstLine},
		}}
	}
	var te *yamlsrc.DepthError
	if errors.As(err, &te) {
		return Issues{{
			Path:    te.Path,
			Code:    CodeTooDeep,
			Message: i18n.T(CodeTooDeep, map[string]string{"max": strconv.Itoa(te.Max)}),
			Cause:   err,
			Params:  map[string]any{"max": te.Max},
		}}
	}
	return Issues{{
		Path:    "/",
		Code:    CodeParseError,
		Message: i18n.T(CodeParseError, nil) + ": " + err.Error(),
		Cause:   err,
	}}
}

func fromEngineIssue(si eng.SimpleIssue) Issue {
	it := Issue{Path: si.Path, Code: si.Code, Message: si.Message}
	switch si.Code {
	case CodeDuplicateKey:
		it.Message = i18n.T(si.Code, map[string]string{"key": si.Key})
		it.Params = map[string]any{"key": si.Key}
	case CodeTooDeep:
		it.Message = i18n.T(si.Code, map[string]string{"max": strconv.Itoa(si.Max)})
		it.Params = map[string]any{"max": si.Max}
	}
	return it
}
