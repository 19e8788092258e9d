package dnd

import (
	"github.com/rs/zerolog"
)

// NoIndex marks a droppable without a declared target index.
const NoIndex = -1

// Droppable is the target side of a gesture. It accepts one Kind and, on a
// matching drop, emits ItemDropped on its bus.
type Droppable struct {
	accept Kind
	dayID  string
	index  int
	bus    *Bus
	onDrop func(Payload)
	log    zerolog.Logger
	over   bool
}

// DropOption configures a Droppable.
type DropOption func(*Droppable)

// WithDayID sets the day that owns an activity target.
func WithDayID(id string) DropOption {
	return func(d *Droppable) { d.dayID = id }
}

// WithIndex sets the position a day target stands for.
func WithIndex(i int) DropOption {
	return func(d *Droppable) { d.index = i }
}

// WithOnDrop sets a callback run after the bus event for accepted drops.
func WithOnDrop(fn func(Payload)) DropOption {
	return func(d *Droppable) { d.onDrop = fn }
}

// WithLogger sets the logger used for rejected drops.
func WithLogger(log zerolog.Logger) DropOption {
	return func(d *Droppable) { d.log = log }
}

// NewDroppable returns a target for payloads of kind accept.
func NewDroppable(accept Kind, bus *Bus, opts ...DropOption) *Droppable {
	d := &Droppable{
		accept: accept,
		index:  NoIndex,
		bus:    bus,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Accept returns the accepted kind.
func (d *Droppable) Accept() Kind { return d.accept }

// DayID returns the owning day id, if any.
func (d *Droppable) DayID() string { return d.dayID }

// Index returns the declared target index, or NoIndex.
func (d *Droppable) Index() int { return d.index }

// IsOver reports whether a gesture is hovering over the target.
func (d *Droppable) IsOver() bool { return d.over }

// DragOver marks the target hovered and asks for a move effect.
func (d *Droppable) DragOver(dt *DataTransfer) {
	if dt != nil {
		dt.DropEffect = EffectMove
	}
	d.over = true
}

// DragLeave clears the hover flag when the pointer leaves the target itself.
// Leaving one of its children (fromSelf false) keeps the flag.
func (d *Droppable) DragLeave(fromSelf bool) {
	if fromSelf {
		d.over = false
	}
}

// Drop clears the hover flag and, if dt carries a payload of the accepted
// kind, emits ItemDropped and runs the drop callback. It reports whether the
// drop was delivered. Malformed data is logged and ignored.
func (d *Droppable) Drop(dt *DataTransfer) bool {
	d.over = false
	if dt == nil {
		return false
	}

	p, err := Decode([]byte(dt.GetData(MIMEType)))
	if err != nil {
		d.log.Warn().Err(err).Str("accept", string(d.accept)).Msg("ignoring drop")
		return false
	}
	if p.Kind() != d.accept {
		d.log.Debug().
			Str("accept", string(d.accept)).
			Str("kind", string(p.Kind())).
			Msg("drop kind not accepted")
		return false
	}

	if d.bus != nil {
		d.bus.Emit(ItemDropped{Payload: p, TargetDayID: d.dayID, TargetIndex: d.index})
	}
	if d.onDrop != nil {
		d.onDrop(p)
	}
	return true
}
