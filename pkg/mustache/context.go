package mustache

import "strconv"

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindList
)

type value struct {
	kind valueKind
	str  string
	num  int
	list []string
}

// scalar returns the interpolated form of a scalar value. Lists have no
// scalar form and interpolate as empty.
func (v value) scalar() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindInt:
		return strconv.Itoa(v.num)
	default:
		return ""
	}
}

type entry struct {
	name  string
	value value
}

// Context is an insertion-ordered mapping from variable name to value.
// Values are strings, ints, or ordered string lists. Inserting an
// existing name replaces its value but keeps its original position, so
// the last insertion is authoritative while enumeration order stays
// stable. The context must not be modified once rendering has begun.
type Context struct {
	entries []entry
	index   map[string]int
}

// NewContext returns an empty substitution context.
func NewContext() *Context {
	return &Context{index: make(map[string]int)}
}

func (c *Context) set(name string, v value) {
	if i, ok := c.index[name]; ok {
		c.entries[i].value = v
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, entry{name: name, value: v})
}

// Set binds name to a string value, replacing any earlier binding.
func (c *Context) Set(name, val string) {
	c.set(name, value{kind: kindString, str: val})
}

// SetInt binds name to an integer value.
func (c *Context) SetInt(name string, val int) {
	c.set(name, value{kind: kindInt, num: val})
}

// SetList binds name to an ordered list of strings.
func (c *Context) SetList(name string, vals []string) {
	list := make([]string, len(vals))
	copy(list, vals)
	c.set(name, value{kind: kindList, list: list})
}

func (c *Context) lookup(name string) (value, bool) {
	i, ok := c.index[name]
	if !ok {
		return value{}, false
	}
	return c.entries[i].value, true
}

// Has reports whether name is bound.
func (c *Context) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// StringValue returns the interpolated form of a scalar binding. The
// second return is false when name is unbound or bound to a list.
func (c *Context) StringValue(name string) (string, bool) {
	v, ok := c.lookup(name)
	if !ok || v.kind == kindList {
		return "", false
	}
	return v.scalar(), true
}

// ListValue returns a list binding. The second return is false when name
// is unbound or bound to a scalar.
func (c *Context) ListValue(name string) ([]string, bool) {
	v, ok := c.lookup(name)
	if !ok || v.kind != kindList {
		return nil, false
	}
	return v.list, true
}

// Names returns the bound names in insertion order.
func (c *Context) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}
	return names
}
