// stack_test.go — stack capture depth, skip handling and WithStack.
package errtree

import (
	"strings"
	"testing"
)

// stackGrab calls captureStackDefault with the provided skipExtra and returns the stack.
func stackGrab(skipExtra int) Stack {
	return captureStackDefault(skipExtra + 1)
}

func stackTestLevel2(skipExtra int) Stack {
	// First recorded frame with skipExtra=0 should be this function.
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	return stackTestLevel2(skipExtra)
}

func TestCaptureStack_UsesDefaultWhenMaxDepthZero(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	if len(s) == 0 {
		t.Fatalf("expected non-empty stack when maxDepth=0 (default), got 0")
	}
	if len(s) > defaultMaxDepth {
		t.Fatalf("stack length exceeds defaultMaxDepth: len=%d default=%d", len(s), defaultMaxDepth)
	}
}

func TestCaptureStack_RespectsMaxDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := captureStack(0, limit)
	if len(s) == 0 || len(s) > limit {
		t.Fatalf("expected 1..%d frames; got %d", limit, len(s))
	}
}

func TestCaptureStack_SkipExtraSkipsCorrectFrames(t *testing.T) {
	t.Parallel()

	s0 := stackTestLevel1(0)
	if len(s0) == 0 || !strings.HasSuffix(s0[0].Function, "stackTestLevel2") {
		t.Fatalf("expected first frame to be stackTestLevel2; got %+v", s0)
	}

	s1 := stackTestLevel1(1)
	if len(s1) == 0 || !strings.HasSuffix(s1[0].Function, "stackTestLevel1") {
		t.Fatalf("expected first frame to be stackTestLevel1; got %+v", s1)
	}
}

func TestCaptureStack_ReturnsNilWhenNoFramesCaptured(t *testing.T) {
	t.Parallel()

	if s := captureStack(1<<20, 8); s != nil {
		t.Fatalf("expected nil stack past the top of the call chain; got %d frames", len(s))
	}
}

func TestCaptureStack_FramesCarryMetadata(t *testing.T) {
	t.Parallel()

	s := captureStackDefault(0)
	if len(s) == 0 {
		t.Fatal("empty stack")
	}
	top := s[0]
	if top.File == "" || top.Line == 0 || top.Function == "" || top.PC == 0 {
		t.Fatalf("incomplete frame: %+v", top)
	}
	if !strings.HasSuffix(top.File, "stack_test.go") {
		t.Fatalf("expected top frame in stack_test.go; got %s", top.File)
	}
}

func TestError_WithStack_IsCopyOnWrite(t *testing.T) {
	t.Parallel()

	feat := Configure([]KindDescriptor{{Name: "Back"}}, WithDispatcher(&recorder{})).
		Context("R", nil).Feature("F", nil)
	base := feat.New("Back", "boom")
	withStk := base.WithStack()

	if base.Stack() != nil {
		t.Fatalf("original error must not gain a stack")
	}
	if withStk == base {
		t.Fatalf("WithStack must return a new value")
	}
	if len(withStk.Stack()) == 0 {
		t.Fatalf("expected captured frames")
	}
	if !strings.HasSuffix(withStk.Stack()[0].Function, "TestError_WithStack_IsCopyOnWrite") {
		t.Fatalf("first frame should be the caller of WithStack; got %q", withStk.Stack()[0].Function)
	}
	if withStk.Error() != base.Error() || withStk.Class() != base.Class() {
		t.Fatalf("WithStack must preserve identity fields")
	}
}

func stackHelper(e *Error) *Error { return e.WithStackSkip(1) }

func TestError_WithStackSkip_SkipsHelpers(t *testing.T) {
	t.Parallel()

	feat := Configure(nil, WithDispatcher(&recorder{})).Context("R", nil).Feature("F", nil)
	got := stackHelper(feat.New("Any", "m"))
	if len(got.Stack()) == 0 || !strings.HasSuffix(got.Stack()[0].Function, "TestError_WithStackSkip_SkipsHelpers") {
		t.Fatalf("expected helper frame skipped; got %+v", got.Stack())
	}

	var nilErr *Error
	if nilErr.WithStack() != nil || nilErr.WithStackSkip(1) != nil {
		t.Fatalf("nil receivers must stay nil")
	}
}
