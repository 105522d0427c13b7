package testing

import (
	"sync"
	"time"

	"github.com/chadxz/waterline-fakes/pkg/core"
)

// DefaultTimeout bounds how long Recorder.Wait blocks
var DefaultTimeout = 5 * time.Second

// TestingT is the subset of *testing.T the helpers use
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Call is one recorded callback invocation
type Call struct {
	Err    any
	Result any
}

// Recorder hands out callbacks that record how they were invoked, so a test
// can wait for asynchronous outcomes
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	changed chan struct{}
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{changed: make(chan struct{})}
}

// Destroy returns a destroy callback that records its error
func (r *Recorder) Destroy() core.DestroyCallback {
	return func(err any) {
		r.record(Call{Err: err})
	}
}

// Result returns a result callback that records its arguments
func (r *Recorder) Result() core.ResultCallback {
	return func(err any, result any) {
		r.record(Call{Err: err, Result: result})
	}
}

// Calls returns the invocations recorded so far
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Len returns the number of recorded invocations
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Wait blocks until at least n invocations were recorded and returns them.
// It fails the test after DefaultTimeout.
func (r *Recorder) Wait(t TestingT, n int) []Call {
	t.Helper()

	timer := time.NewTimer(DefaultTimeout)
	defer timer.Stop()

	for {
		r.mu.Lock()
		if len(r.calls) >= n {
			calls := append([]Call(nil), r.calls...)
			r.mu.Unlock()
			return calls
		}
		changed := r.changed
		got := len(r.calls)
		r.mu.Unlock()

		select {
		case <-changed:
		case <-timer.C:
			t.Errorf("timed out after %s waiting for %d callback(s), got %d", DefaultTimeout, n, got)
			t.FailNow()
			return nil
		}
	}
}

// WaitOne waits for the first invocation and returns it
func (r *Recorder) WaitOne(t TestingT) Call {
	t.Helper()
	calls := r.Wait(t, 1)
	if len(calls) == 0 {
		return Call{}
	}
	return calls[0]
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	close(r.changed)
	r.changed = make(chan struct{})
	r.mu.Unlock()
}
