// format.go — fmt.Formatter for errtree errors.
//
// Behavior:
//
//   %s, %v   → the composed message (Error()).
//   %q       → quoted Error().
//   %+v      → verbose, multi-line:
//                kind=<kind> root="<root>" chunk="<path>" feature="<feature>"
//                msg="<composed message>"
//                original: <original formatted with %+v>
//                stack:
//                  funcA file.go:123
package errtree

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "kind=%s root=%q chunk=%q feature=%q", e.Kind(), e.RootContext(), e.chunk, e.feature)
	_, _ = fmt.Fprintf(w, "\nmsg=%q", e.msg)

	if e.original != nil {
		// %+v recurses into nested taxonomy errors and other formatters.
		_, _ = fmt.Fprintf(w, "\noriginal: %+v", e.original)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
