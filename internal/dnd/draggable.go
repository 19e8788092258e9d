package dnd

import "sync"

// State is a draggable's visual state.
type State int

// Draggable states.
const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Draggable is the source side of a gesture. It moves idle → dragging →
// idle; the flip to dragging is deferred onto a Loop so the drag image is
// captured before the element restyles.
type Draggable struct {
	mu       sync.Mutex
	payload  Payload
	loop     *Loop
	state    State
	gen      uint64
	onChange func(State)
}

// NewDraggable returns an idle draggable carrying payload. onChange, if not
// nil, is called after every state change.
func NewDraggable(payload Payload, loop *Loop, onChange func(State)) *Draggable {
	return &Draggable{payload: payload, loop: loop, onChange: onChange}
}

// Payload returns the carried payload.
func (d *Draggable) Payload() Payload {
	return d.payload
}

// State returns the current state.
func (d *Draggable) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// DragStart writes the payload onto dt with a move effect and schedules the
// switch to Dragging. A nil dt leaves the draggable idle.
func (d *Draggable) DragStart(dt *DataTransfer) error {
	if dt == nil {
		return nil
	}
	data, err := Encode(d.payload)
	if err != nil {
		return err
	}
	dt.SetData(MIMEType, string(data))
	dt.EffectAllowed = EffectMove

	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	d.loop.Post(func() {
		d.mu.Lock()
		if d.gen != gen {
			d.mu.Unlock()
			return
		}
		d.state = Dragging
		d.mu.Unlock()
		d.notify(Dragging)
	})
	return nil
}

// DragEnd returns to Idle and cancels a switch to Dragging that has not run
// yet. It is safe to call in any state.
func (d *Draggable) DragEnd() {
	d.mu.Lock()
	d.gen++
	changed := d.state != Idle
	d.state = Idle
	d.mu.Unlock()

	if changed {
		d.notify(Idle)
	}
}

func (d *Draggable) notify(s State) {
	if d.onChange != nil {
		d.onChange(s)
	}
}
