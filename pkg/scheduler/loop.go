package scheduler

import (
	"context"
	"sync"
)

// Loop is a single-worker event loop. Tasks run one at a time, in the order
// they were scheduled, on a goroutine owned by the loop.
//
// The worker starts with the first scheduled task. After Close it exits once
// the queue is empty, and a later Schedule starts a new worker for the tasks
// that follow, so order is kept across Close.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	pending int
	idle    chan struct{}
	running bool
	closed  bool
	nextID  uint64
}

// NewLoop creates an idle loop
func NewLoop() *Loop {
	l := &Loop{idle: make(chan struct{})}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Schedule enqueues task behind every task scheduled before it
func (l *Loop) Schedule(task func()) {
	if task == nil {
		return
	}

	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.pending++

	l.queue = append(l.queue, func() { l.exec(task, id) })
	if !l.running {
		l.running = true
		go l.work()
	}
	l.cond.Signal()
	l.mu.Unlock()

	taskLogger("loop", id).Debug("task scheduled")
}

// Pending returns the number of tasks scheduled but not yet finished
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Flush blocks until the loop has no queued or running tasks, or ctx is done.
// Tasks scheduled by running tasks are waited for as well.
//
// Flush must not be called from a task running on the loop: that task counts
// as pending, so the loop cannot go idle until ctx ends.
func (l *Loop) Flush(ctx context.Context) error {
	l.mu.Lock()
	if l.pending == 0 {
		l.mu.Unlock()
		return nil
	}
	idle := l.idle
	l.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close lets the worker exit once the queue is drained. It does not wait.
func (l *Loop) Close() error {
	l.mu.Lock()
	l.closed = true
	l.cond.Broadcast()
	l.mu.Unlock()
	return nil
}

func (l *Loop) work() {
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			l.running = false
			l.mu.Unlock()
			return
		}
		next := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		next()
	}
}

func (l *Loop) exec(task func(), id uint64) {
	log := taskLogger("loop", id)
	log.Debug("task running")
	run(task, log)

	l.mu.Lock()
	l.pending--
	if l.pending == 0 {
		close(l.idle)
		l.idle = make(chan struct{})
	}
	l.mu.Unlock()
}
