// Package swagdoc validates hand-written shorthand API documents and converts
// them into OpenAPI fragments.
//
// A shorthand document describes either a route (path, method, parameters,
// body, responses) or an entity (a named reusable schema). Schemas are built
// from variables: compact nodes tagged by "type" (string, number, integer,
// boolean, password, date, array, object, ref) plus the oneOf/anyOf/allOf
// combinators at body, response and entity level.
//
// Design policy:
//   - Keep only public APIs in the root package; decoding engines live under
//     internal/ and source/, output types under oas/, renderers under emit/.
//   - Validation is fail-fast and reports a single Issue with a JSON Pointer
//     into the input.
//   - Conversion never re-validates and never mutates its input.
//
// Typical usage:
//
//	doc, err := swagdoc.ParseDocument(swagdoc.JSONBytes(data))
//	frag, err := swagdoc.ConvertRouteDocument(doc)
//	out, err := emit.JSDoc(frag)
package swagdoc
