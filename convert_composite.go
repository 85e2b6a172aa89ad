package swagdoc

import "github.com/reoring/swagdoc/oas"

// ConvertSchema converts a decoded body, response payload or entity schema.
// Implicit objects become an object wrapper described as "root"; composites
// become {<kind>: [...]}.
func ConvertSchema(s Schema, opts ...ConvertOpt) *oas.Schema {
	return convertSchema(s, convertOpt(opts))
}

func convertSchema(s Schema, opt ConvertOpt) *oas.Schema {
	switch t := s.(type) {
	case ImplicitObject:
		return objectWrapper(t.Properties, opt)
	case *Composite:
		return convertComposite(t, opt)
	}
	return nil
}

func objectWrapper(props *Properties, opt ConvertOpt) *oas.Schema {
	return &oas.Schema{
		Type:        string(KindObject),
		Description: RootDescription,
		Properties:  convertProperties(props, opt),
		Required:    requiredList(props, opt),
	}
}

func convertComposite(c *Composite, opt ConvertOpt) *oas.Schema {
	alts := make([]*oas.Schema, 0, len(c.SubSchemas))
	for _, sub := range c.SubSchemas {
		switch t := sub.(type) {
		case *RefVariable:
			alts = append(alts, &oas.Schema{Ref: t.Ref})
		case ImplicitObject:
			alts = append(alts, objectWrapper(t.Properties, opt))
		}
	}
	out := &oas.Schema{}
	switch c.Kind {
	case KindOneOf:
		out.OneOf = alts
		if c.Discriminator != "" {
			out.Discriminator = &oas.Discriminator{PropertyName: c.Discriminator}
		}
	case KindAnyOf:
		out.AnyOf = alts
	case KindAllOf:
		out.AllOf = alts
	}
	return out
}
