// logr.go — logr sink for controller-runtime style loggers.
package dispatch

import (
	"github.com/go-logr/logr"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Logr reports every error through logger.Error, for controller-runtime and
// other logr based programs.
//
// Keys follow the error.* convention used by log aggregation:
//   - error.kind, error.root_context, error.contexts_chunk, error.feature
//   - error.original when the error carries one
//   - error.context.<param> for each param, in key order
func Logr(logger logr.Logger) errtree.Dispatcher {
	return errtree.DispatchFunc(func(err *errtree.Error, params errtree.Params) error {
		kv := make([]any, 0, 10+2*len(params))
		kv = append(kv,
			"error.kind", err.Name(),
			"error.root_context", err.RootContext(),
			"error.contexts_chunk", err.ContextsChunk(),
			"error.feature", err.Feature(),
		)
		if o := err.Original(); o != nil {
			kv = append(kv, "error.original", errtree.OriginalMessage(o))
		}
		for _, k := range sortedKeys(params) {
			kv = append(kv, "error.context."+k, params[k])
		}
		logger.Error(err, err.Error(), kv...)
		return nil
	})
}
