package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for every date field.
const DateLayout = "2006-01-02"

// DefaultDayTitle is used when a day is created without a title.
const DefaultDayTitle = "New Day"

// Day is a single itinerary slot owning an ordered list of activities.
type Day struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

// NewDay returns a day with a fresh ID and no activities. A blank title
// defaults to DefaultDayTitle.
func NewDay(title, date string) Day {
	if strings.TrimSpace(title) == "" {
		title = DefaultDayTitle
	}
	return Day{
		ID:         NewID(),
		Title:      title,
		Date:       date,
		Activities: []Activity{},
	}
}

// Clone returns a copy of d that shares no slice with d.
func (d Day) Clone() Day {
	if d.Activities != nil {
		d.Activities = append(make([]Activity, 0, len(d.Activities)), d.Activities...)
	}
	return d
}

// Validate checks required fields on the day and its activities.
func (d Day) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: day title is required", ErrValidation)
	}
	if err := validateDate("day date", d.Date); err != nil {
		return err
	}
	for _, a := range d.Activities {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ActivityIndex returns the position of the activity with the given ID, or -1.
func (d Day) ActivityIndex(id string) int {
	for i, a := range d.Activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// WithActivity returns a copy of d with a appended.
func (d Day) WithActivity(a Activity) Day {
	out := d.Clone()
	out.Activities = append(out.Activities, a)
	return out
}

// ReplaceActivity returns a copy of d where the activity with a.ID is replaced
// by a. Returns ErrNotFound if d has no such activity.
func (d Day) ReplaceActivity(a Activity) (Day, error) {
	i := d.ActivityIndex(a.ID)
	if i < 0 {
		return d.Clone(), fmt.Errorf("activity %s: %w", a.ID, ErrNotFound)
	}
	out := d.Clone()
	out.Activities[i] = a
	return out, nil
}

// RemoveActivity returns a copy of d without the activity with the given ID.
// Removing an absent ID returns an unchanged copy.
func (d Day) RemoveActivity(id string) Day {
	out := d
	out.Activities = make([]Activity, 0, len(d.Activities))
	for _, a := range d.Activities {
		if a.ID != id {
			out.Activities = append(out.Activities, a)
		}
	}
	return out
}

// MoveActivity returns a copy of d with the activity at from reinserted at to.
func (d Day) MoveActivity(from, to int) (Day, error) {
	acts, err := Reorder(d.Activities, from, to)
	out := d
	out.Activities = acts
	return out, err
}

// validateDate accepts an empty value or a yyyy-mm-dd calendar date.
func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s %q is not a yyyy-mm-dd date", ErrValidation, field, value)
	}
	return nil
}
