package swagdoc

// Schema is the shape of a route body, a response payload or an entity
// schema: either an ImplicitObject or a *Composite.
type Schema interface {
	isSchema()
}

// SubSchema is one alternative of a Composite: either a *RefVariable or an
// ImplicitObject.
type SubSchema interface {
	isSubSchema()
}

// ImplicitObject is a bare name->variable mapping that stands for an object
// whose fields are the entries.
type ImplicitObject struct {
	Properties *Properties
}

// Composite is a oneOf/anyOf/allOf combinator over sub-schemas.
type Composite struct {
	Kind       Kind
	SubSchemas []SubSchema
	// Discriminator is only meaningful for oneOf.
	Discriminator string
}

func (ImplicitObject) isSchema()    {}
func (*Composite) isSchema()        {}
func (ImplicitObject) isSubSchema() {}
func (*RefVariable) isSubSchema()   {}
