package types

import (
	"fmt"
	"strings"
)

// Patches are partial edit payloads. A nil field leaves the target value as
// is; a non-nil field replaces it (an empty string clears an optional field).
// Applying a patch never changes the ID of the entity it is applied to.

// TripPatch is a partial edit of a Trip's own fields.
type TripPatch struct {
	Title       *string `json:"title,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Destination *string `json:"destination,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
}

// Apply returns a copy of t with the patch merged in.
func (p TripPatch) Apply(t Trip) Trip {
	out := t.Clone()
	setString(&out.Title, p.Title)
	setString(&out.StartDate, p.StartDate)
	setString(&out.EndDate, p.EndDate)
	setString(&out.Destination, p.Destination)
	setString(&out.Description, p.Description)
	setString(&out.CoverImage, p.CoverImage)
	return out
}

// Validate rejects a patch that would blank the required title.
func (p TripPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: trip title is required", ErrValidation)
	}
	return nil
}

// DayPatch is a partial edit of a Day's own fields.
type DayPatch struct {
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
}

// Apply returns a copy of d with the patch merged in.
func (p DayPatch) Apply(d Day) Day {
	out := d.Clone()
	setString(&out.Title, p.Title)
	setString(&out.Date, p.Date)
	return out
}

// Validate rejects a patch that would blank the required title.
func (p DayPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: day title is required", ErrValidation)
	}
	return nil
}

// ActivityPatch is a partial edit of an Activity.
type ActivityPatch struct {
	Title       *string       `json:"title,omitempty"`
	Type        *ActivityType `json:"type,omitempty"`
	Time        *string       `json:"time,omitempty"`
	Description *string       `json:"description,omitempty"`
	Location    *string       `json:"location,omitempty"`
}

// Apply returns a copy of a with the patch merged in.
func (p ActivityPatch) Apply(a Activity) Activity {
	setString(&a.Title, p.Title)
	if p.Type != nil {
		a.Type = *p.Type
	}
	setString(&a.Time, p.Time)
	setString(&a.Description, p.Description)
	setString(&a.Location, p.Location)
	return a
}

// Validate rejects a patch that would blank the title or set an unknown type.
func (p ActivityPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: activity title is required", ErrValidation)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: unknown activity type %q", ErrValidation, *p.Type)
	}
	return nil
}

// UpdateDay validates p and applies it to the day with dayID in a copy of t.
func (t Trip) UpdateDay(dayID string, p DayPatch) (Trip, error) {
	if err := p.Validate(); err != nil {
		return t.Clone(), err
	}
	return t.updateDay(dayID, func(d Day) (Day, error) {
		return p.Apply(d), nil
	})
}

// UpdateActivity validates p and applies it to the activity with actID in the
// day with dayID in a copy of t.
func (t Trip) UpdateActivity(dayID, actID string, p ActivityPatch) (Trip, error) {
	if err := p.Validate(); err != nil {
		return t.Clone(), err
	}
	return t.updateDay(dayID, func(d Day) (Day, error) {
		i := d.ActivityIndex(actID)
		if i < 0 {
			return d, fmt.Errorf("activity %s: %w", actID, ErrNotFound)
		}
		out := d.Clone()
		out.Activities[i] = p.Apply(out.Activities[i])
		return out, nil
	})
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
