package dnd

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MIMEType is the data-transfer format the payload travels under.
const MIMEType = "application/json"

// ErrMalformedPayload is returned when drag data cannot be decoded into a
// known payload.
var ErrMalformedPayload = errors.New("malformed drag payload")

// Kind tags the payload variant.
type Kind string

// Payload kinds.
const (
	KindDay      Kind = "DAY"
	KindActivity Kind = "ACTIVITY"
)

// Payload is what a draggable carries: a DayMove or an ActivityMove.
type Payload interface {
	Kind() Kind
	ItemID() string
	ItemIndex() int
}

// DayMove is the payload of a dragged day: its id and its index in the trip
// when the gesture started.
type DayMove struct {
	DayID string
	Index int
}

func (DayMove) Kind() Kind { return KindDay }
func (m DayMove) ItemID() string { return m.DayID }
func (m DayMove) ItemIndex() int { return m.Index }

// ActivityMove is the payload of a dragged activity: its id, its index in its
// day and the id of that day.
type ActivityMove struct {
	ActivityID string
	Index      int
	DayID      string
}

func (ActivityMove) Kind() Kind { return KindActivity }
func (m ActivityMove) ItemID() string { return m.ActivityID }
func (m ActivityMove) ItemIndex() int { return m.Index }

type wirePayload struct {
	Type Kind     `json:"type"`
	Item wireItem `json:"item"`
}

type wireItem struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	DayID string `json:"dayId,omitempty"`
}

// Encode renders p in its wire form:
//
//	{"type":"DAY","item":{"id":"d1","index":0}}
//	{"type":"ACTIVITY","item":{"id":"a1","index":2,"dayId":"d1"}}
func Encode(p Payload) ([]byte, error) {
	var w wirePayload
	switch m := p.(type) {
	case DayMove:
		w = wirePayload{Type: KindDay, Item: wireItem{ID: m.DayID, Index: m.Index}}
	case ActivityMove:
		w = wirePayload{Type: KindActivity, Item: wireItem{ID: m.ActivityID, Index: m.Index, DayID: m.DayID}}
	default:
		return nil, fmt.Errorf("%w: unsupported payload %T", ErrMalformedPayload, p)
	}
	if err := w.check(); err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// Decode parses the wire form back into a DayMove or ActivityMove.
func Decode(data []byte) (Payload, error) {
	var w wirePayload
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := w.check(); err != nil {
		return nil, err
	}
	if w.Type == KindDay {
		return DayMove{DayID: w.Item.ID, Index: w.Item.Index}, nil
	}
	return ActivityMove{ActivityID: w.Item.ID, Index: w.Item.Index, DayID: w.Item.DayID}, nil
}

func (w wirePayload) check() error {
	switch w.Type {
	case KindDay, KindActivity:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrMalformedPayload, w.Type)
	}
	if w.Item.ID == "" {
		return fmt.Errorf("%w: missing item id", ErrMalformedPayload)
	}
	if w.Item.Index < 0 {
		return fmt.Errorf("%w: negative index %d", ErrMalformedPayload, w.Item.Index)
	}
	if w.Type == KindActivity && w.Item.DayID == "" {
		return fmt.Errorf("%w: activity without day id", ErrMalformedPayload)
	}
	return nil
}
