package linter

// Store is the read/write surface shared by Context and Namespace
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
}

// Context is the mutable state of one document pass. Every rule sees the
// same Context; keys form one shared namespace unless a rule works through
// Namespace. It is not safe for concurrent use.
type Context struct {
	values map[string]interface{}
}

// NewContext creates an empty context
func NewContext() *Context {
	return &Context{values: make(map[string]interface{})}
}

// Get returns the value stored under key
func (c *Context) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set stores value under key
func (c *Context) Set(key string, value interface{}) {
	c.values[key] = value
}

// Delete removes key
func (c *Context) Delete(key string) {
	delete(c.values, key)
}

// Len returns the number of stored keys
func (c *Context) Len() int {
	return len(c.values)
}

// Namespace returns a view of c whose keys are prefixed with "prefix/"
func (c *Context) Namespace(prefix string) *Namespace {
	return &Namespace{ctx: c, prefix: prefix + "/"}
}

// Namespace is a prefixed view of a Context
type Namespace struct {
	ctx    *Context
	prefix string
}

func (n *Namespace) Get(key string) (interface{}, bool) {
	return n.ctx.Get(n.prefix + key)
}

func (n *Namespace) Set(key string, value interface{}) {
	n.ctx.Set(n.prefix+key, value)
}

func (n *Namespace) Delete(key string) {
	n.ctx.Delete(n.prefix + key)
}

// Load returns the value under key if it is present and of type T
func Load[T any](s Store, key string) (T, bool) {
	v, ok := s.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
