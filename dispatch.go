// dispatch.go — the emission contract and the default sink.
//
// A Dispatcher is looked up once per Configure call and shared by every
// context and feature derived from that factory. Only the params handed to
// it vary per context; the dispatcher itself cannot be overridden below the
// factory.
//
// The default sink writes one zerolog event per dispatch to os.Stderr. It is
// an ordinary value: nothing is installed process-wide.
//
//go:generate mockgen -source=dispatch.go -destination=mock_dispatcher_test.go -package=errtree
package errtree

import (
	"os"

	"github.com/rs/zerolog"
)

// Dispatcher receives constructed errors together with their merged params.
// Implementations must be safe for concurrent use if features are shared
// across goroutines; errtree does not serialize calls.
type Dispatcher interface {
	Dispatch(err *Error, params Params) error
}

// DispatchFunc adapts a plain function to Dispatcher.
type DispatchFunc func(err *Error, params Params) error

// Dispatch calls fn(err, params).
func (fn DispatchFunc) Dispatch(err *Error, params Params) error { return fn(err, params) }

// NewLogDispatcher returns a Dispatcher that logs every error at error level.
//
// Fields: kind, root_context, contexts_chunk, feature, original (when set)
// and params as a nested dict. The message is the composed error message.
func NewLogDispatcher(logger zerolog.Logger) Dispatcher {
	return DispatchFunc(func(err *Error, params Params) error {
		ev := logger.Error().
			Str("kind", err.Name()).
			Str("root_context", err.RootContext()).
			Str("contexts_chunk", err.ContextsChunk()).
			Str("feature", err.Feature())
		if o := err.Original(); o != nil {
			ev = ev.Str("original", OriginalMessage(o))
		}
		if len(params) > 0 {
			ev = ev.Dict("params", zerolog.Dict().Fields(map[string]any(params)))
		}
		ev.Msg(err.Error())
		return nil
	})
}

// StderrDispatcher is the default sink: JSON lines on os.Stderr.
func StderrDispatcher() Dispatcher {
	return NewLogDispatcher(zerolog.New(os.Stderr).With().Timestamp().Logger())
}
