// registry.go — per-root registry of kind classes.
//
// A registry is built every time a root context is created. Each configured
// descriptor becomes a *Class tagged with (kind, root); an extra class for
// KindUnknown backs every lookup miss. Two registries never share a *Class,
// even for the same kind name, so Class.Match distinguishes errors by the
// root they were created under.
package errtree

// KindDescriptor configures one kind.
//
// Postfix, when set, is called with the original error (never nil) and its
// result is appended verbatim to the composed message. Callers supply any
// separator themselves, e.g. " >>> ".
type KindDescriptor struct {
	Name    Kind
	Postfix func(original any) string
}

// Class is the registry entry a kind resolves to under one root context.
// It stands in for per-kind error types: compare classes, not Go types.
type Class struct {
	name    Kind
	root    string
	postfix func(any) string
}

// Name returns the kind this class represents.
func (c *Class) Name() Kind {
	if c == nil {
		return KindUnknown
	}
	return c.name
}

// Root returns the root context the class was built for.
func (c *Class) Root() string {
	if c == nil {
		return ""
	}
	return c.root
}

// HasPostfix reports whether messages of this class get a postfix when an
// original error is supplied.
func (c *Class) HasPostfix() bool { return c != nil && c.postfix != nil }

// Match reports whether err, or any error in its unwrap graph, was built
// through exactly this class.
func (c *Class) Match(err error) bool {
	if c == nil || err == nil {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if te, ok := e.(*Error); ok && te.class == c {
			found = true
			return false
		}
		return true
	})
	return found
}

// postfixFor returns the postfix for original, or "" when either side is absent.
func (c *Class) postfixFor(original any) string {
	if original == nil || c.postfix == nil {
		return ""
	}
	return c.postfix(original)
}

type registry struct {
	root    string
	classes map[Kind]*Class
	unknown *Class
}

// newRegistry binds descs to root. Later descriptors with a repeated name
// replace earlier ones; a configured KindUnknown replaces the fallback.
func newRegistry(root string, descs []KindDescriptor) *registry {
	r := &registry{
		root:    root,
		classes: make(map[Kind]*Class, len(descs)),
		unknown: &Class{name: KindUnknown, root: root},
	}
	for _, d := range descs {
		r.classes[d.Name] = &Class{name: d.Name, root: root, postfix: d.Postfix}
	}
	if c, ok := r.classes[KindUnknown]; ok {
		r.unknown = c
	}
	return r
}

// get never fails: absent kinds resolve to the fallback class.
func (r *registry) get(kind Kind) *Class {
	if c, ok := r.classes[kind]; ok {
		return c
	}
	return r.unknown
}
