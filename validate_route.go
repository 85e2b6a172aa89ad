package swagdoc

import (
	"strconv"
	"strings"
)

const (
	minStatusCode = 100
	maxStatusCode = 600
)

// ValidateRoute validates a shorthand route document.
func ValidateRoute(raw any) error {
	_, err := DecodeRoute(raw)
	return err
}

// DecodeRoute validates raw and returns the typed route. Checks run in
// document field order (path, method, tag, summary, description, path and
// query variables, responses, body) and stop at the first violation.
func DecodeRoute(raw any) (Route, error) {
	var r Route
	p := RootPath()
	m, ok := asMapping(raw)
	if !ok {
		return r, notAnObject(p, "route")
	}

	var err error
	if r.Path, err = requiredText(m, p, "path"); err != nil {
		return r, err
	}
	method, err := requiredText(m, p, "method")
	if err != nil {
		return r, err
	}
	r.Method = Method(method)
	if !r.Method.IsValid() {
		return r, fail(p.Field("method"), CodeInvalidMethod, "value", method)
	}
	if r.Tag, err = requiredText(m, p, "tag"); err != nil {
		return r, err
	}
	if r.Summary, err = requiredText(m, p, "summary"); err != nil {
		return r, err
	}
	if r.Description, err = requiredText(m, p, "description"); err != nil {
		return r, err
	}

	if v, ok := m.get("pathVariables"); ok {
		if r.PathVariables, err = decodeProperties(v, p.Field("pathVariables"), "pathVariables", false); err != nil {
			return r, err
		}
	}
	if v, ok := m.get("queryVariables"); ok {
		if r.QueryVariables, err = decodeProperties(v, p.Field("queryVariables"), "queryVariables", true); err != nil {
			return r, err
		}
	}

	if r.Responses, err = decodeResponses(m, p); err != nil {
		return r, err
	}

	if r.Method.AcceptsBody() {
		if v, ok := m.get("body"); ok {
			if r.Body, err = decodeSchema(v, p.Field("body"), "body"); err != nil {
				return r, err
			}
		}
	}
	return r, nil
}

func decodeResponses(m mapping, p PathRef) (map[int]RequestResponse, error) {
	raw, ok := m.get("responses")
	if !ok || raw == nil {
		return nil, missing(p, "responses")
	}
	rm, isMap := asMapping(raw)
	if !isMap {
		return nil, notAnObject(p.Field("responses"), "responses")
	}
	p = p.Field("responses")

	// every key is checked before any value, so a bad status code is
	// reported even when an earlier response is malformed. Keys that name
	// the same code ("200", "200.0") are rejected.
	codes := make([]int, 0, rm.len())
	seen := make(map[int]bool, rm.len())
	err := rm.each(func(key string, _ any) error {
		code, ok := parseStatusCode(key)
		if !ok || seen[code] {
			return fail(p.Field(key), CodeInvalidStatusCode, "key", key)
		}
		seen[code] = true
		codes = append(codes, code)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int]RequestResponse, len(codes))
	i := 0
	err = rm.each(func(key string, v any) error {
		rr, err := decodeRequestResponse(v, p.Field(key))
		if err != nil {
			return err
		}
		out[codes[i]] = rr
		i++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parseStatusCode accepts integral codes in [100, 600]. "200" and "200.0"
// are both 200; anything non-numeric is rejected.
func parseStatusCode(key string) (int, bool) {
	key = strings.TrimSpace(key)
	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, false
	}
	n, ok := asInt(f)
	if !ok || n < minStatusCode || n > maxStatusCode {
		return 0, false
	}
	return n, true
}

func decodeRequestResponse(raw any, p PathRef) (RequestResponse, error) {
	var rr RequestResponse
	m, ok := asMapping(raw)
	if !ok {
		return rr, notAnObject(p, "response")
	}
	var err error
	if rr.Description, err = requiredText(m, p, "description"); err != nil {
		return rr, err
	}
	if v, ok := m.get("response"); ok {
		if rr.Response, err = decodeSchema(v, p.Field("response"), "response"); err != nil {
			return rr, err
		}
	}
	return rr, nil
}
