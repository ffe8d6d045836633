package errtree

import (
	"fmt"
	"sync"
	"testing"
	"testing/synctest"

	"golang.org/x/sync/errgroup"
)

// safeRecorder is a recorder that tolerates concurrent Dispatch calls.
type safeRecorder struct {
	mu     sync.Mutex
	errs   []*Error
	params []Params
}

func (r *safeRecorder) Dispatch(err *Error, params Params) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.params = append(r.params, params)
	return nil
}

// TestCOW_ConcurrentDerivationAndEmit_Synctest derives subcontexts and
// features from one shared root on many goroutines and emits through each.
// The root snapshot must never observe a child's params.
func TestCOW_ConcurrentDerivationAndEmit_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &safeRecorder{}
		root := Configure([]KindDescriptor{{Name: "Back"}}, WithDispatcher(rec)).
			Context("Svc", Params{"shared": true})

		const N = 64
		var g errgroup.Group
		for i := 0; i < N; i++ {
			g.Go(func() error {
				sub := root.Subcontext(fmt.Sprintf("W%d", i), Params{"gid": i})
				feat := sub.Feature("Job", nil)
				return feat.Emit("Back", "failed", WithParams(Params{"call": i}))
			})
		}
		synctest.Wait()
		if err := g.Wait(); err != nil {
			t.Fatalf("emit: %v", err)
		}

		if len(rec.errs) != N {
			t.Fatalf("expected %d dispatches, got %d", N, len(rec.errs))
		}
		seen := make([]bool, N)
		for i, p := range rec.params {
			gid := p["gid"].(int)
			if p["call"] != gid || p["shared"] != true {
				t.Fatalf("params crossed between goroutines: %#v", p)
			}
			want := fmt.Sprintf("Svc/W%d/Job: failed", gid)
			if rec.errs[i].Error() != want {
				t.Fatalf("message mismatch: got=%q want=%q", rec.errs[i].Error(), want)
			}
			seen[gid] = true
		}
		for i, ok := range seen {
			if !ok {
				t.Fatalf("missing result for gid=%d", i)
			}
		}
		if got := root.Params(); len(got) != 1 || got["shared"] != true {
			t.Fatalf("root params mutated: %#v", got)
		}
	})
}

// TestCOW_ConcurrentWithStack_Synctest checks that WithStack never mutates
// the shared base error.
func TestCOW_ConcurrentWithStack_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		base := Configure(nil, WithDispatcher(&safeRecorder{})).
			Context("Svc", nil).Feature("Job", nil).New("Any", "boom")

		const N = 32
		out := make(chan *Error, N)
		for i := 0; i < N; i++ {
			go func() { out <- base.WithStack() }()
		}
		synctest.Wait()

		for i := 0; i < N; i++ {
			e := <-out
			if e == base || len(e.Stack()) == 0 || e.Error() != base.Error() {
				t.Fatalf("derived error is not an independent copy")
			}
		}
		if base.Stack() != nil {
			t.Fatalf("base error gained a stack")
		}
	})
}
