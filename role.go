package security

import "github.com/axent-pl/security/abac"

// Role is a Grant with its type fixed to TypeRole. It shares Grant's runtime
// shape and attribute contract, adding only role-flavored constructors.
type Role struct {
	Grant
}

func NewRole(name string) Role {
	return NewRoleBuilder().Name(name).Build()
}

// NewRoleWithAttributes creates a role carrying a copy of the given custom
// attributes.
func NewRoleWithAttributes(name string, attrs abac.Source) Role {
	return NewRoleBuilder().Name(name).Attributes(attrs).Build()
}

// RoleBuilder is a fluent builder for Role. It reuses the shared grant
// builder state; there is no Type setter, the type is pinned to TypeRole.
type RoleBuilder struct {
	attributeBuilder
}

func NewRoleBuilder() *RoleBuilder {
	b := &RoleBuilder{}
	b.setType(TypeRole)
	return b
}

func (b *RoleBuilder) Name(name string) *RoleBuilder {
	b.setName(name)
	return b
}

func (b *RoleBuilder) Attributes(src abac.Source) *RoleBuilder {
	b.setAttributes(src)
	return b
}

func (b *RoleBuilder) AddAttribute(key string, value any) *RoleBuilder {
	b.addAttribute(key, value)
	return b
}

func (b *RoleBuilder) Build() Role {
	return Role{Grant: b.buildGrant()}
}
