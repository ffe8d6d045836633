// error.go — the error value produced by features.
//
// An Error is a single tagged variant: every configured kind shares the same
// shape and is told apart by its Kind (and, when identity matters, by the
// *Class it was built from). There is no per-kind Go type.
//
// Design tenets (carried from the core):
//   - Interop-first: Error implements error, Unwrap and fmt.Formatter.
//   - Non-mutating: WithStack returns a new value.
//   - Policy-free: construction never dispatches; only Feature.Emit does.
package errtree

// Error is an immutable taxonomy error.
//
// Error() returns the composed message "<path>/<feature>: <message><postfix>".
// Unwrap returns the original error when it is a Go error; attribute maps and
// other originals are kept for inspection via Original.
type Error struct {
	class    *Class
	chunk    string
	feature  string
	msg      string
	original any
	stk      Stack
}

// Error returns the composed, path-qualified message.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.msg
}

// Kind returns the resolved kind, KindUnknown for unrecognized names.
func (e *Error) Kind() Kind {
	if e == nil || e.class == nil {
		return KindUnknown
	}
	return e.class.name
}

// Name is Kind as a plain string.
func (e *Error) Name() string { return string(e.Kind()) }

// RootContext returns the root context name fixed when the registry was built.
func (e *Error) RootContext() string {
	if e == nil || e.class == nil {
		return ""
	}
	return e.class.root
}

// ContextsChunk returns the context path of the producing feature, without
// the feature name.
func (e *Error) ContextsChunk() string {
	if e == nil {
		return ""
	}
	return e.chunk
}

// Feature returns the name of the feature that constructed the error.
func (e *Error) Feature() string {
	if e == nil {
		return ""
	}
	return e.feature
}

// Message is an alias of Error kept for symmetry with the other getters.
func (e *Error) Message() string { return e.Error() }

// Original returns the original error or attribute map, unmodified.
func (e *Error) Original() any {
	if e == nil {
		return nil
	}
	return e.original
}

// Class returns the registry class the error was constructed through.
func (e *Error) Class() *Class {
	if e == nil {
		return nil
	}
	return e.class
}

// Stack returns the captured stack, nil unless WithStack was called.
func (e *Error) Stack() Stack {
	if e == nil {
		return nil
	}
	return e.stk
}

// Unwrap exposes the original to errors.Is/As when it is an error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.original.(error); ok {
		return err
	}
	return nil
}

// WithStack returns a copy of e carrying the caller's stack.
func (e *Error) WithStack() *Error {
	if e == nil {
		return nil
	}
	n := e.clone()
	n.stk = captureStackDefault(1)
	return n
}

// WithStackSkip is like WithStack but skips extra frames (helper wrappers).
func (e *Error) WithStackSkip(skip int) *Error {
	if e == nil {
		return nil
	}
	n := e.clone()
	n.stk = captureStackDefault(skip + 1)
	return n
}

func (e *Error) clone() *Error {
	n := *e
	// Stack is never mutated after capture; sharing the slice is fine.
	return &n
}

var _ error = (*Error)(nil)
