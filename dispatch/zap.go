// zap.go — zap sink.
package dispatch

import (
	"go.uber.org/zap"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Zap logs every error at error level on logger.
//
// Fields: kind, root_context, contexts_chunk, feature, original (when set),
// and one "params.<key>" field per param in key order.
func Zap(logger *zap.Logger) errtree.Dispatcher {
	return errtree.DispatchFunc(func(err *errtree.Error, params errtree.Params) error {
		fields := make([]zap.Field, 0, 5+len(params))
		fields = append(fields,
			zap.String("kind", err.Name()),
			zap.String("root_context", err.RootContext()),
			zap.String("contexts_chunk", err.ContextsChunk()),
			zap.String("feature", err.Feature()),
		)
		if o := err.Original(); o != nil {
			fields = append(fields, zap.String("original", errtree.OriginalMessage(o)))
		}
		for _, k := range sortedKeys(params) {
			fields = append(fields, zap.Any("params."+k, params[k]))
		}
		logger.Error(err.Error(), fields...)
		return nil
	})
}
