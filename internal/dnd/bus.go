package dnd

import "sync"

// ItemDropped is emitted when a droppable accepts a payload. TargetDayID is
// the owning day of an activity target; TargetIndex is the declared index of
// a day target and -1 otherwise.
type ItemDropped struct {
	Payload     Payload
	TargetDayID string
	TargetIndex int
}

// Bus is a process-wide registry of ItemDropped listeners.
type Bus struct {
	mu        sync.Mutex
	next      int
	listeners []listener
}

type listener struct {
	id int
	fn func(ItemDropped)
}

// NewBus returns a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (b *Bus) Subscribe(fn func(ItemDropped)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every listener in subscription order. Listeners may subscribe
// or unsubscribe during Emit; the change applies to the next Emit.
func (b *Bus) Emit(ev ItemDropped) {
	b.mu.Lock()
	ls := make([]listener, len(b.listeners))
	copy(ls, b.listeners)
	b.mu.Unlock()

	for _, l := range ls {
		l.fn(ev)
	}
}

// Len returns the number of listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
