package swagdoc

import "sort"

// Route describes one HTTP endpoint in shorthand form.
type Route struct {
	Path        string
	Method      Method
	Tag         string
	Summary     string
	Description string
	// PathVariables are always emitted as required parameters.
	PathVariables  *Properties
	QueryVariables *Properties
	// Body is only decoded for post and put routes.
	Body      Schema
	Responses map[int]RequestResponse
}

// RequestResponse is one entry of Route.Responses.
type RequestResponse struct {
	Description string
	// Response is optional.
	Response Schema
}

// StatusCodes returns the response codes in ascending order.
func (r Route) StatusCodes() []int {
	codes := make([]int, 0, len(r.Responses))
	for code := range r.Responses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Entity is a named reusable schema, converted into a component schema.
type Entity struct {
	Name   string
	Schema Schema
}
