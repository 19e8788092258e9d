package dnd

import (
	"slices"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Apply resolves ev against trip and returns the updated trip and whether
// anything changed. trip itself is never modified.
//
// A day drop moves the dragged day to the target's declared index. The day's
// current position is looked up by id; the payload index is used only when
// the id is gone. An activity drop removes the activity from the payload's
// day and appends it to the target's day. Drops that cannot be resolved
// return an unchanged copy.
func Apply(trip types.Trip, ev ItemDropped) (types.Trip, bool) {
	switch p := ev.Payload.(type) {
	case DayMove:
		return applyDayMove(trip, p, ev.TargetIndex)
	case ActivityMove:
		return applyActivityMove(trip, p, ev.TargetDayID)
	default:
		return trip.Clone(), false
	}
}

func applyDayMove(trip types.Trip, p DayMove, to int) (types.Trip, bool) {
	from := trip.DayIndex(p.DayID)
	if from < 0 {
		from = p.Index
	}
	if from == to {
		return trip.Clone(), false
	}
	out, err := trip.MoveDay(from, to)
	if err != nil {
		return out, false
	}
	return out, true
}

func applyActivityMove(trip types.Trip, p ActivityMove, toDayID string) (types.Trip, bool) {
	if toDayID == "" {
		return trip.Clone(), false
	}
	out, err := trip.MoveActivity(p.ActivityID, p.DayID, toDayID)
	if err != nil {
		return out, false
	}
	if p.DayID == toDayID {
		i := trip.DayIndex(toDayID)
		if slices.Equal(activityIDs(trip.Days[i]), activityIDs(out.Days[i])) {
			return out, false
		}
	}
	return out, true
}

func activityIDs(d types.Day) []string {
	ids := make([]string, len(d.Activities))
	for i, a := range d.Activities {
		ids[i] = a.ID
	}
	return ids
}
