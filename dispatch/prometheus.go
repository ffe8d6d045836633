// prometheus.go — errors_total counter sink.
package dispatch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	errtree "github.com/xgx-io/xgx-errtree"
)

// Counter counts dispatched errors by kind, root context and contexts chunk.
type Counter struct {
	total *prometheus.CounterVec
}

// CounterLabels are the label names of the errors_total metric.
var CounterLabels = []string{"kind", "root_context", "contexts_chunk"}

// NewCounter registers <namespace>_errors_total on reg. If an identical
// collector is already registered it is reused, so several factories can
// share one metric.
func NewCounter(reg prometheus.Registerer, namespace string) (*Counter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Number of errors dispatched, by kind and naming context.",
	}, CounterLabels)

	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		vec = existing
	}
	return &Counter{total: vec}, nil
}

// Dispatch implements errtree.Dispatcher.
func (c *Counter) Dispatch(err *errtree.Error, _ errtree.Params) error {
	c.total.WithLabelValues(err.Name(), err.RootContext(), err.ContextsChunk()).Inc()
	return nil
}

// Vec exposes the underlying collector, mainly for tests.
func (c *Counter) Vec() *prometheus.CounterVec { return c.total }

var _ errtree.Dispatcher = (*Counter)(nil)
