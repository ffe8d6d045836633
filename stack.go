// stack.go — opt-in stack capture for errtree errors.
//
// Features never capture stacks on their own: construction stays cheap and
// allocation-light. Callers mark interesting boundaries with
// (*Error).WithStack, which resolves frames through runtime.CallersFrames so
// inlined calls are reported correctly.
package errtree

import "runtime"

// Frame is one call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack lists frames from the most recent call outward.
type Stack []Frame

const defaultMaxDepth = 64

// captureStackDefault captures up to defaultMaxDepth frames. skip counts
// frames above the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip+1, defaultMaxDepth)
}

// captureStack skips runtime.Callers and itself (+2) plus skip more frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{PC: fr.PC, File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			break
		}
	}
	return out
}
