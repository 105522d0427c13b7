package scheduler

import "sync"

// Manual queues tasks until the test runs them with Tick or RunPending.
// It makes "the callback has not run yet" directly observable.
type Manual struct {
	mu     sync.Mutex
	queue  []manualTask
	nextID uint64
}

type manualTask struct {
	id   uint64
	task func()
}

// NewManual creates an empty manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// Schedule enqueues task without running it
func (m *Manual) Schedule(task func()) {
	if task == nil {
		return
	}

	m.mu.Lock()
	m.nextID++
	m.queue = append(m.queue, manualTask{id: m.nextID, task: task})
	id := m.nextID
	m.mu.Unlock()

	taskLogger("manual", id).Debug("task scheduled")
}

// Pending returns the number of queued tasks
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Tick runs the oldest queued task. It reports false when the queue was empty.
func (m *Manual) Tick() bool {
	m.mu.Lock()
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.queue[0]
	m.queue[0] = manualTask{}
	m.queue = m.queue[1:]
	m.mu.Unlock()

	log := taskLogger("manual", next.id)
	log.Debug("task running")
	run(next.task, log)
	return true
}

// RunPending runs tasks until the queue is empty, including tasks scheduled
// while running, and returns how many ran
func (m *Manual) RunPending() int {
	n := 0
	for m.Tick() {
		n++
	}
	return n
}
