// factory.go — Configure and the context factory.
package errtree

// Option configures a Factory.
type Option func(*options)

type options struct {
	disp Dispatcher
	base Params
}

// WithDispatcher sets the sink used by Emit and EmitCreated. A nil d keeps
// the default StderrDispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		if d != nil {
			o.disp = d
		}
	}
}

// WithBaseParams sets factory-level params inherited by every root context.
// Repeated options merge left to right.
func WithBaseParams(p Params) Option {
	return func(o *options) { o.base = o.base.Merge(p) }
}

// Factory creates independent root contexts for one set of kinds.
type Factory struct {
	kinds []KindDescriptor
	disp  Dispatcher
	base  Params
}

// Configure captures kinds and options and returns a Factory. It never fails:
// duplicate names keep the last descriptor, and an empty list is valid (every
// construction then resolves to KindUnknown).
func Configure(kinds []KindDescriptor, opts ...Option) *Factory {
	o := options{base: defaultParams()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.disp == nil {
		o.disp = StderrDispatcher()
	}
	descs := make([]KindDescriptor, len(kinds))
	copy(descs, kinds)
	return &Factory{kinds: descs, disp: o.disp, base: o.base}
}

// Context builds a fresh registry bound to root and returns the root context.
// Every call yields an independent tree: registries and classes are never
// shared between roots, even for equal names.
func (f *Factory) Context(root string, params Params) *Context {
	return &Context{
		reg:    newRegistry(root, f.kinds),
		disp:   f.disp,
		path:   root,
		name:   root,
		params: f.base.Merge(params),
	}
}

// Kinds returns the configured kind names in configuration order.
func (f *Factory) Kinds() []Kind { return kindNames(f.kinds) }

// Dispatcher returns the sink shared by all contexts of this factory.
func (f *Factory) Dispatcher() Dispatcher { return f.disp }
