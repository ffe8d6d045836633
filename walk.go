// walk.go — traversal over single- and multi-wrapped error graphs.
//
// errors.Unwrap only follows Unwrap() error. Originals passed to Wrap are
// often joins (Unwrap() []error) or other taxonomy errors, so class and kind
// matching walk both forms here.
//
// Cycle guard: a plain map[error] would panic on non-comparable dynamic
// types, so seen-tracking is split:
//   • seenErr — dynamically comparable values
//   • seenPtr — pointer identity for everything else that is a pointer
// Anything else is treated as acyclic, bounded by maxWalkDepth.
package errtree

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	rv := reflect.ValueOf(err)
	if _, ok := err.(*Error); ok || rv.Comparable() {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
	}
	return true
}

// Walk visits every distinct node of err's unwrap graph in pre-order
// (parent before children, joined children left to right). Returning false
// from visit stops the walk. Nil err or visit is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	stack = append(stack, err)
	markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil && markSeen(kids[i], seenErr, seenPtr) {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if next := u.Unwrap(); next != nil && markSeen(next, seenErr, seenPtr) {
				stack = append(stack, next)
			}
		}
	}
}

// Collect returns every *Error in err's unwrap graph in Walk order, e.g. the
// chain left behind when one feature re-wraps another feature's error.
func Collect(err error) []*Error {
	var out []*Error
	Walk(err, func(e error) bool {
		if te, ok := e.(*Error); ok && te != nil {
			out = append(out, te)
		}
		return true
	})
	return out
}
