package swagdoc

// IssueAt creates an Issue at the given path with provided code and placeholder pairs.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code string, kv ...string) Issue {
	return p.Issue(code, kv...)
}

// fail builds the single-issue error returned by fail-fast validators.
func fail(p PathRef, code string, kv ...string) error {
	return Issues{IssueAt(p, code, kv...)}
}

func missing(p PathRef, field string) error {
	return fail(p.Field(field), CodeMissingField, "field", field)
}

func wrongType(p PathRef, field, expected string) error {
	return fail(p.Field(field), CodeWrongType, "field", field, "expected", expected)
}

func notAnObject(p PathRef, field string) error {
	return fail(p, CodeStructural, "field", field)
}
