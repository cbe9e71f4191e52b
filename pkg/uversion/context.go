package uversion

import "github.com/stephenlacy/unrealmodding/pkg/archive"

// Context is an immutable snapshot of the three version axes attached to one
// read or write session. Every record codec consults it read-only to decide
// which gated fields exist on the wire. A context is internally consistent:
// ObjectUE5 is only meaningful on streams whose registry version postdates
// the introduction of UE5 numbering.
type Context struct {
	registry  RegistryVersion
	object    ObjectVersion
	objectUE5 ObjectVersionUE5
	custom    map[archive.GUID]int32
}

// NewContext builds a context directly from the three axes. The custom map
// is copied; later mutation of the argument does not affect the context.
func NewContext(reg RegistryVersion, obj ObjectVersion, ue5 ObjectVersionUE5, custom map[archive.GUID]int32) *Context {
	c := &Context{
		registry:  reg,
		object:    obj,
		objectUE5: ue5,
		custom:    make(map[archive.GUID]int32, len(custom)),
	}
	for g, v := range custom {
		c.custom[g] = v
	}
	return c
}

// Registry returns the asset-registry format version.
func (c *Context) Registry() RegistryVersion {
	return c.registry
}

// Object returns the UE4 object serialization version.
func (c *Context) Object() ObjectVersion {
	return c.object
}

// ObjectUE5 returns the UE5 object serialization version, or
// UE5VersionInvalid on pre-UE5 streams.
func (c *Context) ObjectUE5() ObjectVersionUE5 {
	return c.objectUE5
}

// CustomVersion looks up the session's revision of a feature stream.
func (c *Context) CustomVersion(feature archive.GUID) (int32, bool) {
	v, ok := c.custom[feature]
	return v, ok
}

// CustomVersionCount returns the number of feature streams in the session
// table.
func (c *Context) CustomVersionCount() int {
	return len(c.custom)
}
