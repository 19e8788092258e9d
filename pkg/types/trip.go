package types

import (
	"fmt"
	"strings"
)

// DefaultTripTitle is used when a trip is created without a title.
const DefaultTripTitle = "New Trip"

// Trip is the top-level itinerary aggregate. It owns its days exclusively and
// the days own their activities. Day order is itinerary order.
type Trip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Destination string `json:"destination,omitempty"`
	Days        []Day  `json:"days"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
}

// NewTrip returns a trip with a fresh ID and no days. A blank title defaults
// to DefaultTripTitle.
func NewTrip(title string) Trip {
	if strings.TrimSpace(title) == "" {
		title = DefaultTripTitle
	}
	return Trip{
		ID:    NewID(),
		Title: title,
		Days:  []Day{},
	}
}

// Clone returns a deep copy of t: the day slice and every activity slice are
// freshly allocated.
func (t Trip) Clone() Trip {
	if t.Days == nil {
		return t
	}
	days := make([]Day, len(t.Days))
	for i, d := range t.Days {
		days[i] = d.Clone()
	}
	t.Days = days
	return t
}

// Validate checks required fields on the trip and everything it owns.
func (t Trip) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: trip title is required", ErrValidation)
	}
	if err := validateDate("start date", t.StartDate); err != nil {
		return err
	}
	if err := validateDate("end date", t.EndDate); err != nil {
		return err
	}
	// yyyy-mm-dd strings order the same way as the dates they name.
	if t.StartDate != "" && t.EndDate != "" && t.EndDate < t.StartDate {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrValidation, t.EndDate, t.StartDate)
	}
	for _, d := range t.Days {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DayIndex returns the position of the day with the given ID, or -1.
func (t Trip) DayIndex(id string) int {
	for i, d := range t.Days {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// FindDay returns a copy of the day with the given ID.
func (t Trip) FindDay(id string) (Day, bool) {
	i := t.DayIndex(id)
	if i < 0 {
		return Day{}, false
	}
	return t.Days[i].Clone(), true
}

// FindActivity returns the ID of the owning day and the activity with the
// given ID.
func (t Trip) FindActivity(id string) (string, Activity, bool) {
	for _, d := range t.Days {
		if i := d.ActivityIndex(id); i >= 0 {
			return d.ID, d.Activities[i], true
		}
	}
	return "", Activity{}, false
}

// ActivityCount returns the number of activities across all days.
func (t Trip) ActivityCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Activities)
	}
	return n
}

// WithDay returns a copy of t with d appended.
func (t Trip) WithDay(d Day) Trip {
	out := t.Clone()
	out.Days = append(out.Days, d.Clone())
	return out
}

// ReplaceDay returns a copy of t where the day with d.ID is replaced by d.
// Returns ErrNotFound if t has no such day.
func (t Trip) ReplaceDay(d Day) (Trip, error) {
	i := t.DayIndex(d.ID)
	out := t.Clone()
	if i < 0 {
		return out, fmt.Errorf("day %s: %w", d.ID, ErrNotFound)
	}
	out.Days[i] = d.Clone()
	return out, nil
}

// RemoveDay returns a copy of t without the day with the given ID.
// Removing an absent ID returns an unchanged copy.
func (t Trip) RemoveDay(id string) Trip {
	out := t
	out.Days = make([]Day, 0, len(t.Days))
	for _, d := range t.Days {
		if d.ID != id {
			out.Days = append(out.Days, d.Clone())
		}
	}
	return out
}

// MoveDay returns a copy of t with the day at from reinserted at to.
func (t Trip) MoveDay(from, to int) (Trip, error) {
	out := t.Clone()
	days, err := Reorder(out.Days, from, to)
	if err != nil {
		return out, err
	}
	out.Days = days
	return out, nil
}

// WithActivity returns a copy of t with a appended to the day with dayID.
func (t Trip) WithActivity(dayID string, a Activity) (Trip, error) {
	return t.updateDay(dayID, func(d Day) (Day, error) {
		return d.WithActivity(a), nil
	})
}

// ReplaceActivity returns a copy of t where the activity with a.ID in the day
// with dayID is replaced by a.
func (t Trip) ReplaceActivity(dayID string, a Activity) (Trip, error) {
	return t.updateDay(dayID, func(d Day) (Day, error) {
		return d.ReplaceActivity(a)
	})
}

// RemoveActivity returns a copy of t without the activity with actID in the
// day with dayID. Removing an absent activity is not an error.
func (t Trip) RemoveActivity(dayID, actID string) (Trip, error) {
	return t.updateDay(dayID, func(d Day) (Day, error) {
		return d.RemoveActivity(actID), nil
	})
}

// MoveActivity transfers the activity with actID from the day with fromDayID
// to the end of the day with toDayID. When both IDs name the same day the
// activity moves to the end of that day. Returns ErrNotFound if either day is
// missing or the activity is not in the source day.
func (t Trip) MoveActivity(actID, fromDayID, toDayID string) (Trip, error) {
	src := t.DayIndex(fromDayID)
	if src < 0 {
		return t.Clone(), fmt.Errorf("source day %s: %w", fromDayID, ErrNotFound)
	}
	dst := t.DayIndex(toDayID)
	if dst < 0 {
		return t.Clone(), fmt.Errorf("target day %s: %w", toDayID, ErrNotFound)
	}
	ai := t.Days[src].ActivityIndex(actID)
	if ai < 0 {
		return t.Clone(), fmt.Errorf("activity %s in day %s: %w", actID, fromDayID, ErrNotFound)
	}
	moved := t.Days[src].Activities[ai]

	out := t.Clone()
	out.Days[src] = out.Days[src].RemoveActivity(actID)
	out.Days[dst] = out.Days[dst].WithActivity(moved)
	return out, nil
}

// updateDay applies fn to the day with dayID in a copy of t.
func (t Trip) updateDay(dayID string, fn func(Day) (Day, error)) (Trip, error) {
	out := t.Clone()
	i := out.DayIndex(dayID)
	if i < 0 {
		return out, fmt.Errorf("day %s: %w", dayID, ErrNotFound)
	}
	d, err := fn(out.Days[i])
	if err != nil {
		return out, err
	}
	out.Days[i] = d
	return out, nil
}
