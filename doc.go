// doc.go — package documentation for xgx-errtree
//
// Package errtree builds hierarchical, named error taxonomies without a Go
// type per error kind. A small set of root kinds (say, "Front" for
// client-facing logic and "Back" for server logic) is attached to a tree of
// naming contexts (team, module, subsystem) ending in features. Every error
// carries a path-qualified message and a bag of inherited params.
//
// # Building a Tree
//
//	factory := errtree.Configure([]errtree.KindDescriptor{
//	    {Name: "Front", Postfix: errtree.PostfixWith(" >>> ")},
//	    {Name: "Back"},
//	}, errtree.WithBaseParams(errtree.Params{"app": "web"}))
//
//	auth := factory.Context("Auth", errtree.Params{"team": "identity"})
//	social := auth.Subcontext("Social", nil)
//	facebook := social.Feature("Facebook", errtree.Params{"provider": "fb"})
//
//	err := facebook.New("Front", "Account inactive")
//	// err.Error()          == "Auth/Social/Facebook: Account inactive"
//	// err.Kind()           == "Front"
//	// err.RootContext()    == "Auth"
//	// err.ContextsChunk()  == "Auth/Social"
//
// # Kinds and the Fallback
//
// Kind names are case-sensitive strings. Asking a feature for a kind its
// registry does not know never fails: the error is built with KindUnknown
// ("UnknownError") and the message is composed exactly as usual.
//
// Each Factory.Context call builds a fresh registry. Errors therefore carry a
// *Class unique to their root; use Class.Match where other ecosystems would
// test class identity:
//
//	if auth.Class("Front").Match(err) { ... }
//
// # Messages
//
//	"<context path>/<feature>: <message><postfix>"
//
// The postfix is appended only when an original error is supplied (Wrap or
// WithOriginal) AND the kind defines a Postfix function. The function gets the
// raw original and its result is appended verbatim.
//
// # Params
//
// Params merge shallowly and right-biased at every level:
//
//	library defaults → WithBaseParams → root → subcontexts → feature → call time
//
// Parents are never mutated and accessors return copies.
//
// # Emitting
//
// Construction (New, Newf, Wrap) is pure. Emit and EmitCreated hand the error
// and the merged params to the factory's Dispatcher exactly once and return
// its error unmodified. Emission never panics or aborts on its own; return
// the constructed error when control flow should stop:
//
//	if err := facebook.Emit("Back", "token refresh failed",
//	    errtree.WithOriginal(cause),
//	    errtree.WithParams(errtree.Params{"attempt": 3}),
//	); err != nil {
//	    // the sink failed
//	}
//
// The default Dispatcher (StderrDispatcher) logs a zerolog JSON line to
// os.Stderr. Package dispatch offers zap, logr, Prometheus and OpenTelemetry
// sinks; package config loads kinds and base params from YAML or TOML.
//
// # Concurrency
//
// Factories, contexts, features and errors are immutable after construction
// and safe to share. Dispatchers are called synchronously and concurrently
// if features are used from several goroutines.
package errtree
