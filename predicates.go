// predicates.go — stdlib-aligned predicates over taxonomy errors.
//
// Scope:
//   • Answer "is this one of ours, and which kind?" without type switches.
//   • Interop-first: errors.As so single and joined unwrap chains both work.
package errtree

import "errors"

// IsLibraryError reports whether v is, or wraps, an *Error.
// It accepts any value so callers can test recovered panics or loosely
// typed fields without asserting to error first.
func IsLibraryError(v any) bool {
	err, ok := v.(error)
	if !ok || err == nil {
		return false
	}
	var te *Error
	return errors.As(err, &te) && te != nil
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) && te != nil {
		return te.Kind()
	}
	return ""
}

// HasKind reports whether any *Error in err's unwrap graph has kind.
func HasKind(err error, kind Kind) bool {
	found := false
	Walk(err, func(e error) bool {
		if te, ok := e.(*Error); ok && te != nil && te.Kind() == kind {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsUnknown reports whether the first *Error in err's chain fell back to
// KindUnknown.
func IsUnknown(err error) bool {
	var te *Error
	return errors.As(err, &te) && te != nil && te.Kind().IsUnknown()
}

// RootContextOf returns the root context of the first *Error in err's chain.
func RootContextOf(err error) (string, bool) {
	var te *Error
	if errors.As(err, &te) && te != nil {
		return te.RootContext(), true
	}
	return "", false
}
