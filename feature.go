// feature.go — leaf features: error construction and emission.
//
// Scope:
//   - New / Newf / Wrap construct *Error values. They never dispatch and have
//     no failure path: unknown kinds resolve to KindUnknown.
//   - Emit / EmitCreated merge call-time params over the feature's frozen
//     params and hand (error, params) to the dispatcher exactly once.
//
// Emission does not panic or otherwise interrupt control flow. Callers who
// want to abort return the value from New/Wrap like any other Go error.
// A dispatcher's error is returned to the caller unmodified.
package errtree

import "fmt"

// Feature is a leaf of the naming tree where errors are produced.
type Feature struct {
	reg    *registry
	disp   Dispatcher
	chunk  string
	name   string
	params Params
}

// Name returns the feature name.
func (f *Feature) Name() string { return f.name }

// ContextPath returns the path of the context the feature belongs to.
func (f *Feature) ContextPath() string { return f.chunk }

// Params returns a copy of the feature's params.
func (f *Feature) Params() Params { return f.params.Clone() }

// New constructs an error of kind with no original error.
func (f *Feature) New(kind Kind, message string) *Error {
	return f.construct(kind, message, nil)
}

// Newf constructs an error of kind with a formatted message.
func (f *Feature) Newf(kind Kind, format string, args ...any) *Error {
	return f.construct(kind, fmt.Sprintf(format, args...), nil)
}

// Wrap constructs an error of kind that keeps original for inspection.
// original may be an error, an attribute map or any other value; nil means
// no original. When the kind defines a postfix it is applied to original.
func (f *Feature) Wrap(kind Kind, message string, original any) *Error {
	return f.construct(kind, message, original)
}

func (f *Feature) construct(kind Kind, message string, original any) *Error {
	c := f.reg.get(kind)
	return &Error{
		class:    c,
		chunk:    f.chunk,
		feature:  f.name,
		msg:      composeMessage(f.chunk, f.name, message, c.postfixFor(original)),
		original: original,
	}
}

// composeMessage renders "<path>/<feature>: <message><postfix>".
func composeMessage(path, feature, message, postfix string) string {
	return path + PathSeparator + feature + ": " + message + postfix
}

// EmitOption customizes a single Emit call.
type EmitOption func(*emitConfig)

type emitConfig struct {
	original any
	params   Params
}

// WithOriginal attaches the original error to the emitted value.
func WithOriginal(original any) EmitOption {
	return func(c *emitConfig) { c.original = original }
}

// WithParams overrides feature params for one emission. Repeated options
// merge left to right.
func WithParams(p Params) EmitOption {
	return func(c *emitConfig) { c.params = c.params.Merge(p) }
}

// Emit constructs an error and dispatches it with the merged params.
func (f *Feature) Emit(kind Kind, message string, opts ...EmitOption) error {
	var cfg emitConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return f.dispatch(f.construct(kind, message, cfg.original), cfg.params)
}

// EmitCreated dispatches an existing error, e.g. one passed up from another
// feature, with params merged over this feature's params. A nil err is a no-op.
func (f *Feature) EmitCreated(err *Error, params Params) error {
	if err == nil {
		return nil
	}
	return f.dispatch(err, params)
}

func (f *Feature) dispatch(err *Error, params Params) error {
	return f.disp.Dispatch(err, f.params.Merge(params))
}
