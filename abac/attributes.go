package abac

import "sort"

// Source is the read-only view of an attribute set. Attribute based access
// control evaluators query principals and grants through this interface
// without knowing their concrete type.
type Source interface {
	// Attribute returns the raw stored value for a key. The second return
	// value is false when the key is absent.
	Attribute(key string) (any, bool)
	// AttributeNames returns the attribute names in a stable order.
	AttributeNames() []string
}

// Attributes is an insertion-ordered mapping from attribute name to an
// arbitrary value. Later writes to the same key overwrite the value but keep
// the key's original position, so enumeration stays deterministic.
//
// The zero value is not usable, use NewAttributes.
type Attributes struct {
	keys   []string
	values map[string]any
}

func NewAttributes() *Attributes {
	return &Attributes{
		keys:   make([]string, 0),
		values: make(map[string]any),
	}
}

// NewAttributesFrom creates a container holding a copy of all entries of src,
// preserving src's enumeration order.
func NewAttributesFrom(src Source) *Attributes {
	a := NewAttributes()
	a.CopyFrom(src)
	return a
}

// NewAttributesFromMap seeds a container from a plain map. Go maps have no
// order, so keys are inserted sorted to keep enumeration deterministic.
func NewAttributesFromMap(m map[string]any) *Attributes {
	a := NewAttributes()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Put(k, m[k])
	}
	return a
}

// Put inserts or overwrites an entry.
func (a *Attributes) Put(key string, value any) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Attributes) Attribute(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// AttributeNames returns a fresh slice of the stored names in insertion
// order. Mutating the returned slice does not affect the container.
func (a *Attributes) AttributeNames() []string {
	names := make([]string, len(a.keys))
	copy(names, a.keys)
	return names
}

// CopyFrom bulk-imports all entries of src in src's order. Entries already
// present keep their position and get the value from src where keys collide.
func (a *Attributes) CopyFrom(src Source) {
	for _, k := range src.AttributeNames() {
		if v, ok := src.Attribute(k); ok {
			a.Put(k, v)
		}
	}
}

func (a *Attributes) Len() int {
	return len(a.keys)
}

var _ Source = &Attributes{}
