// fanout.go — multi-sink dispatch and the discard sink.
package dispatch

import (
	"maps"
	"slices"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Discard accepts every error and does nothing.
var Discard errtree.Dispatcher = errtree.DispatchFunc(func(*errtree.Error, errtree.Params) error { return nil })

// Fanout calls each non-nil dispatcher in order. The first failure is
// returned unmodified and the remaining dispatchers are skipped. Each
// dispatcher receives its own copy of params.
func Fanout(ds ...errtree.Dispatcher) errtree.Dispatcher {
	sinks := slices.DeleteFunc(slices.Clone(ds), func(d errtree.Dispatcher) bool { return d == nil })
	return errtree.DispatchFunc(func(err *errtree.Error, params errtree.Params) error {
		for _, d := range sinks {
			if e := d.Dispatch(err, params.Clone()); e != nil {
				return e
			}
		}
		return nil
	})
}

// sortedKeys gives sinks a deterministic field order.
func sortedKeys(p errtree.Params) []string {
	return slices.Sorted(maps.Keys(p))
}
