// context.go — naming contexts (root and subcontexts).
//
// A Context is an immutable node in the naming tree: its full path, its
// resolved Params snapshot, and the registry/dispatcher inherited from the
// root. Deriving children never changes the parent, and siblings never
// observe each other.
package errtree

// PathSeparator joins context path segments.
const PathSeparator = "/"

// Context is a named point in the naming tree.
type Context struct {
	reg    *registry
	disp   Dispatcher
	path   string
	name   string
	params Params
}

// Subcontext returns a child context with path "<path>/<name>" and params
// merged over this context's params. Names are not validated; repeated or
// empty segments simply accumulate in the path.
func (c *Context) Subcontext(name string, params Params) *Context {
	return &Context{
		reg:    c.reg,
		disp:   c.disp,
		path:   c.path + PathSeparator + name,
		name:   name,
		params: c.params.Merge(params),
	}
}

// Feature returns a leaf bound to this context's path.
func (c *Context) Feature(name string, params Params) *Feature {
	return &Feature{
		reg:    c.reg,
		disp:   c.disp,
		chunk:  c.path,
		name:   name,
		params: c.params.Merge(params),
	}
}

// Class resolves kind through this tree's registry (KindUnknown on a miss).
func (c *Context) Class(kind Kind) *Class { return c.reg.get(kind) }

// Path returns the full, "/"-joined context path.
func (c *Context) Path() string { return c.path }

// Name returns the last path segment.
func (c *Context) Name() string { return c.name }

// Root returns the root context name this tree was created with.
func (c *Context) Root() string { return c.reg.root }

// Params returns a copy of the resolved params.
func (c *Context) Params() Params { return c.params.Clone() }
