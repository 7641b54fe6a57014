package security

import "github.com/axent-pl/security/abac"

// attributeBuilder holds the state shared by all grant builders. Specialized
// builders embed it and re-expose the chainable setters returning their own
// concrete type, so fluent chains stay type-correct for each specialization.
type attributeBuilder struct {
	typ   string
	name  string
	props *abac.Attributes
}

func (b *attributeBuilder) setType(typ string)  { b.typ = typ }
func (b *attributeBuilder) setName(name string) { b.name = name }

// setAttributes replaces the whole accumulated container with a copy of src.
func (b *attributeBuilder) setAttributes(src abac.Source) {
	b.props = abac.NewAttributesFrom(src)
}

// addAttribute merges a single entry into the accumulated container.
func (b *attributeBuilder) addAttribute(key string, value any) {
	b.properties().Put(key, value)
}

func (b *attributeBuilder) properties() *abac.Attributes {
	if b.props == nil {
		b.props = abac.NewAttributes()
	}
	return b.props
}

// buildGrant materializes a Grant in two phases: the accumulated attributes
// are copied first, then the reserved "type" and "name" entries are written
// last so they always win over colliding caller-supplied keys. The builder
// state is left untouched, building twice yields grants with equal but
// independently owned attribute storage.
func (b *attributeBuilder) buildGrant() Grant {
	props := abac.NewAttributesFrom(b.properties())
	props.Put(AttrType, b.typ)
	props.Put(AttrName, b.name)
	return Grant{typ: b.typ, name: b.name, properties: props}
}

// GrantBuilder is a fluent builder for Grant.
//
// No validation is performed: empty type or name values are accepted here,
// stricter rules belong to callers or specializations.
type GrantBuilder struct {
	attributeBuilder
}

func NewGrantBuilder() *GrantBuilder {
	return &GrantBuilder{}
}

// Type configures the type of the grant, e.g. "role" or "scope".
func (b *GrantBuilder) Type(typ string) *GrantBuilder {
	b.setType(typ)
	return b
}

// Name configures the logical name of the grant, e.g. "admin" or
// "calendar-read".
func (b *GrantBuilder) Name(name string) *GrantBuilder {
	b.setName(name)
	return b
}

// Attributes replaces the accumulated attributes with a copy of src.
func (b *GrantBuilder) Attributes(src abac.Source) *GrantBuilder {
	b.setAttributes(src)
	return b
}

// AddAttribute adds a single attribute to the grant.
func (b *GrantBuilder) AddAttribute(key string, value any) *GrantBuilder {
	b.addAttribute(key, value)
	return b
}

func (b *GrantBuilder) Build() Grant {
	return b.buildGrant()
}
