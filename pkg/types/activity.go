package types

import (
	"fmt"
	"strings"
)

// ActivityType classifies an activity.
type ActivityType string

// Activity types.
const (
	ActivityFood      ActivityType = "food"
	ActivityMuseum    ActivityType = "museum"
	ActivityLandmark  ActivityType = "landmark"
	ActivityShopping  ActivityType = "shopping"
	ActivityTransport ActivityType = "transport"
	ActivityHotel     ActivityType = "hotel"
	ActivityOther     ActivityType = "other"
)

// ActivityTypes lists every activity type in display order.
var ActivityTypes = []ActivityType{
	ActivityFood,
	ActivityMuseum,
	ActivityLandmark,
	ActivityShopping,
	ActivityTransport,
	ActivityHotel,
	ActivityOther,
}

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseActivityType converts s (case-insensitive) to an ActivityType.
// An empty string parses as ActivityOther.
func ParseActivityType(s string) (ActivityType, error) {
	if s == "" {
		return ActivityOther, nil
	}
	t := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown activity type %q", ErrValidation, s)
	}
	return t, nil
}

// DefaultActivityTitle is used when an activity is created without a title.
const DefaultActivityTitle = "New Activity"

// Activity is a single scheduled item within a Day.
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ActivityType `json:"type"`
	Time        string       `json:"time,omitempty"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
}

// NewActivity returns an activity with a fresh ID. A blank title defaults to
// DefaultActivityTitle and an empty type to ActivityOther.
func NewActivity(title string, typ ActivityType, time string) Activity {
	if strings.TrimSpace(title) == "" {
		title = DefaultActivityTitle
	}
	if typ == "" {
		typ = ActivityOther
	}
	return Activity{
		ID:    NewID(),
		Title: title,
		Type:  typ,
		Time:  time,
	}
}

// Validate checks required fields.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: activity title is required", ErrValidation)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown activity type %q", ErrValidation, a.Type)
	}
	return nil
}
