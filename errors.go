package swagdoc

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeStructural          = "structural"
	CodeMissingField        = "missing_field"
	CodeMissingDescription  = "missing_description"
	CodeMissingRequired     = "missing_required"
	CodeWrongType           = "wrong_type"
	CodeInvalidType         = "invalid_type"
	CodeInvalidMethod       = "invalid_method"
	CodeInvalidStatusCode   = "invalid_status_code"
	CodeInvalidRefFormat    = "invalid_ref_format"
	CodeInvalidDate         = "invalid_date"
	CodeUnknownVariableType = "unknown_variable_type"
	// Input decoding (JSON/YAML sources)
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTooDeep      = "too_deep"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the input document (for example: /responses/200/description).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"field":"example", "expected":"string"})
	// for i18n and diagnostics.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// Validation is fail-fast, so validators in this package return exactly one.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. wrong_type at /name/example: example should be a string
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			b.WriteString(": ")
			b.WriteString(it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes underlying causes to errors.Is / errors.As.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
