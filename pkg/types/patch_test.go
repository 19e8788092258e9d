package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTripPatchApply(t *testing.T) {
	trip := twoDayTrip()
	trip.Destination = "Portugal"

	got := TripPatch{
		Title:       strPtr("Lisbon & Porto"),
		StartDate:   strPtr("2025-06-01"),
		Destination: strPtr(""),
	}.Apply(trip)

	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, "Lisbon & Porto", got.Title)
	assert.Equal(t, "2025-06-01", got.StartDate)
	assert.Empty(t, got.Destination)
	assert.Equal(t, trip.Days, got.Days)
	assert.Equal(t, "Lisbon", trip.Title, "original trip must not change")
}

func TestPatchValidate(t *testing.T) {
	assert.ErrorIs(t, TripPatch{Title: strPtr("")}.Validate(), ErrValidation)
	assert.NoError(t, TripPatch{}.Validate())
	assert.ErrorIs(t, DayPatch{Title: strPtr("  ")}.Validate(), ErrValidation)
	assert.NoError(t, DayPatch{Date: strPtr("2025-01-01")}.Validate())

	bad := ActivityType("spa")
	assert.ErrorIs(t, ActivityPatch{Type: &bad}.Validate(), ErrValidation)
	assert.ErrorIs(t, ActivityPatch{Title: strPtr("")}.Validate(), ErrValidation)
}

func TestTripUpdateDay(t *testing.T) {
	trip := twoDayTrip()

	got, err := trip.UpdateDay("b", DayPatch{Title: strPtr("Belem"), Date: strPtr("2025-05-21")})
	require.NoError(t, err)
	assert.Equal(t, "b", got.Days[1].ID)
	assert.Equal(t, "Belem", got.Days[1].Title)
	assert.Equal(t, "2025-05-21", got.Days[1].Date)
	assert.Equal(t, []string{"act3"}, activityIDs(got.Days[1]))

	_, err = trip.UpdateDay("missing", DayPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = trip.UpdateDay("b", DayPatch{Title: strPtr("")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTripUpdateActivity(t *testing.T) {
	trip := twoDayTrip()
	museum := ActivityMuseum

	got, err := trip.UpdateActivity("a", "act2", ActivityPatch{Type: &museum, Time: strPtr("15:00")})
	require.NoError(t, err)
	_, act, ok := got.FindActivity("act2")
	require.True(t, ok)
	assert.Equal(t, "act2", act.ID)
	assert.Equal(t, "Pasteis", act.Title)
	assert.Equal(t, ActivityMuseum, act.Type)
	assert.Equal(t, "15:00", act.Time)

	_, orig, _ := trip.FindActivity("act2")
	assert.Equal(t, ActivityFood, orig.Type, "original trip must not change")

	_, err = trip.UpdateActivity("a", "act3", ActivityPatch{Time: strPtr("10:00")})
	assert.ErrorIs(t, err, ErrNotFound)
}
