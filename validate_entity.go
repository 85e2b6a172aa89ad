package swagdoc

// ValidateEntity validates a shorthand entity document.
func ValidateEntity(raw any) error {
	_, err := DecodeEntity(raw)
	return err
}

// DecodeEntity validates raw and returns the typed entity.
func DecodeEntity(raw any) (Entity, error) {
	var e Entity
	p := RootPath()
	m, ok := asMapping(raw)
	if !ok {
		return e, notAnObject(p, "entity")
	}
	var err error
	if e.Name, err = requiredText(m, p, "name"); err != nil {
		return e, err
	}
	s, ok := m.get("schema")
	if !ok || s == nil {
		return e, missing(p, "schema")
	}
	if e.Schema, err = decodeSchema(s, p.Field("schema"), "schema"); err != nil {
		return e, err
	}
	return e, nil
}
