package dnd

import "sync"

// Loop is a FIFO of deferred tasks. Post queues a task; Drain runs everything
// queued, including tasks posted by tasks, in order.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post queues fn to run on the next Drain.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
}

// Drain runs queued tasks until the queue is empty and returns how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.tasks) == 0 {
			l.mu.Unlock()
			return n
		}
		fn := l.tasks[0]
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		fn()
		n++
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}
