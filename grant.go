package security

import "github.com/axent-pl/security/abac"

// Principal is anything that can act as a named identity.
type Principal interface {
	Name() string
}

// Known grant types. The type is an open string, consumers may define their
// own grantable categories.
const (
	TypeRole  = "role"
	TypeScope = "scope"
)

// Reserved attribute keys. Their values always mirror the grant's own fields
// and win over colliding caller-supplied attributes.
const (
	AttrType = "type"
	AttrName = "name"
)

// Grant is anything that can be granted to a subject: a role, an OAuth2
// scope, a permission, or any other named capability. Besides its type and
// name a grant carries an open set of attributes for attribute based access
// control, always including the reserved "type" and "name" entries.
//
// Grants are immutable once built and safe to share across goroutines.
type Grant struct {
	typ        string
	name       string
	properties *abac.Attributes
}

// NewGrant creates a grant for a type and a name, e.g. ("scope", "calendar-read").
func NewGrant(typ, name string) Grant {
	return NewGrantBuilder().Type(typ).Name(name).Build()
}

// NewGrantWithAttributes creates a grant carrying a copy of the given custom
// attributes. Reserved keys present in attrs are overridden.
func NewGrantWithAttributes(typ, name string, attrs abac.Source) Grant {
	return NewGrantBuilder().Type(typ).Name(name).Attributes(attrs).Build()
}

func (g Grant) Type() string { return g.typ }

// Name implements Principal.
func (g Grant) Name() string { return g.name }

// Attribute returns the raw value of an attribute, including the reserved
// "type" and "name" entries.
func (g Grant) Attribute(key string) (any, bool) {
	return g.properties.Attribute(key)
}

func (g Grant) AttributeNames() []string {
	return g.properties.AttributeNames()
}

func (g Grant) String() string {
	return g.typ + ":" + g.name
}

var _ abac.Source = Grant{}
var _ Principal = Grant{}
