// otel.go — OpenTelemetry span sink.
package dispatch

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Span records each error on a short span named "<contexts chunk>/<feature>".
// The span carries errtree.* attributes, the error event and an Error status.
func Span(tracer trace.Tracer) errtree.Dispatcher {
	return errtree.DispatchFunc(func(err *errtree.Error, params errtree.Params) error {
		attrs := spanAttributes(err, params)
		_, span := tracer.Start(context.Background(), err.ContextsChunk()+errtree.PathSeparator+err.Feature(),
			trace.WithAttributes(attrs...))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil
	})
}

func spanAttributes(err *errtree.Error, params errtree.Params) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 4+len(params))
	attrs = append(attrs,
		attribute.String("errtree.kind", err.Name()),
		attribute.String("errtree.root_context", err.RootContext()),
		attribute.String("errtree.contexts_chunk", err.ContextsChunk()),
		attribute.String("errtree.feature", err.Feature()),
	)
	for _, k := range sortedKeys(params) {
		attrs = append(attrs, paramAttribute("errtree.param."+k, params[k]))
	}
	return attrs
}

func paramAttribute(key string, v any) attribute.KeyValue {
	switch tv := v.(type) {
	case string:
		return attribute.String(key, tv)
	case bool:
		return attribute.Bool(key, tv)
	case int:
		return attribute.Int(key, tv)
	case int64:
		return attribute.Int64(key, tv)
	case float64:
		return attribute.Float64(key, tv)
	case []string:
		return attribute.StringSlice(key, tv)
	default:
		return attribute.String(key, fmt.Sprint(tv))
	}
}
