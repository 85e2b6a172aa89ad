package swagdoc

import "github.com/reoring/swagdoc/oas"

// ConvertEntity converts a decoded entity into a component schema keyed by
// the entity name.
func ConvertEntity(e Entity, opts ...ConvertOpt) oas.Components {
	return oas.Components{e.Name: convertSchema(e.Schema, convertOpt(opts))}
}
