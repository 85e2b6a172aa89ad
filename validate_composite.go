package swagdoc

// DecodeSchema validates raw as a body, response payload or entity schema:
// either a name->variable mapping or a oneOf/anyOf/allOf composite.
func DecodeSchema(raw any) (Schema, error) {
	return decodeSchema(raw, RootPath(), "schema")
}

func decodeSchema(raw any, p PathRef, field string) (Schema, error) {
	m, ok := asMapping(raw)
	if !ok {
		return nil, notAnObject(p, field)
	}
	if t, ok := m.get("type"); ok {
		if s, isStr := t.(string); isStr && Kind(s).IsComposite() {
			c, err := decodeComposite(m, p, Kind(s))
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	props, err := decodeProperties(raw, p, field, true)
	if err != nil {
		return nil, err
	}
	return ImplicitObject{Properties: props}, nil
}

func decodeComposite(m mapping, p PathRef, kind Kind) (*Composite, error) {
	raw, ok := m.get("subSchemas")
	if !ok || raw == nil {
		return nil, missing(p, "subSchemas")
	}
	entries, isSlice := asSlice(raw)
	if !isSlice {
		return nil, wrongType(p, "subSchemas", "an array")
	}
	c := &Composite{Kind: kind, SubSchemas: make([]SubSchema, 0, len(entries))}
	for i, e := range entries {
		sub, err := decodeSubSchema(e, p.Field("subSchemas").Index(i))
		if err != nil {
			return nil, err
		}
		c.SubSchemas = append(c.SubSchemas, sub)
	}
	if d, ok := m.get("discriminator"); ok && d != nil {
		s, isStr := d.(string)
		if !isStr {
			return nil, wrongType(p, "discriminator", "a string")
		}
		if kind == KindOneOf {
			c.Discriminator = s
		}
	}
	return c, nil
}

// decodeSubSchema tells a ref from an implicit object by its "type" field; a
// property literally named "type" therefore only counts when it is the
// string "ref".
func decodeSubSchema(raw any, p PathRef) (SubSchema, error) {
	m, ok := asMapping(raw)
	if !ok {
		return nil, notAnObject(p, "subSchemas entry")
	}
	if t, _ := m.get("type"); t == string(KindRef) {
		ref, err := decodeRef(m, p, true)
		if err != nil {
			return nil, err
		}
		return ref, nil
	}
	props, err := decodeProperties(raw, p, "subSchemas entry", true)
	if err != nil {
		return nil, err
	}
	return ImplicitObject{Properties: props}, nil
}
