// doc.go — package documentation for dispatch
//
// Package dispatch provides sinks for errtree's Dispatcher contract.
//
// Every sink here is an errtree.Dispatcher and can be passed to
// errtree.WithDispatcher directly or combined with Fanout:
//
//	counter, _ := dispatch.NewCounter(prometheus.DefaultRegisterer, "web")
//	factory := errtree.Configure(kinds, errtree.WithDispatcher(dispatch.Fanout(
//	    dispatch.Zap(logger),
//	    counter,
//	)))
//
// Sinks never retry and never swallow failures of the sinks they wrap.
package dispatch
