package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoDayTrip builds D1(id=a) with act1, act2 and D2(id=b) with act3.
func twoDayTrip() Trip {
	return Trip{
		ID:    "trip-1",
		Title: "Lisbon",
		Days: []Day{
			{ID: "a", Title: "D1", Activities: []Activity{
				{ID: "act1", Title: "Tram 28", Type: ActivityTransport},
				{ID: "act2", Title: "Pasteis", Type: ActivityFood},
			}},
			{ID: "b", Title: "D2", Activities: []Activity{
				{ID: "act3", Title: "Belem Tower", Type: ActivityLandmark},
			}},
		},
	}
}

func TestNewTrip(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{name: "keeps title", title: "Rome", wantTitle: "Rome"},
		{name: "empty title defaults", title: "", wantTitle: DefaultTripTitle},
		{name: "blank title defaults", title: "   ", wantTitle: DefaultTripTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := NewTrip(tt.title)
			assert.Equal(t, tt.wantTitle, trip.Title)
			assert.NotEmpty(t, trip.ID)
			assert.NotNil(t, trip.Days)
			assert.Empty(t, trip.Days)
		})
	}

	t.Run("ids are distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewTrip("").ID
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestNewDayAndActivityDefaults(t *testing.T) {
	d := NewDay("", "2025-05-20")
	assert.Equal(t, DefaultDayTitle, d.Title)
	assert.Equal(t, "2025-05-20", d.Date)
	assert.NotNil(t, d.Activities)

	a := NewActivity("", "", "09:00")
	assert.Equal(t, DefaultActivityTitle, a.Title)
	assert.Equal(t, ActivityOther, a.Type)
	assert.Equal(t, "09:00", a.Time)
	assert.NotEqual(t, d.ID, a.ID)
}

func TestTripCloneSharesNothing(t *testing.T) {
	orig := twoDayTrip()
	c := orig.Clone()

	c.Days[0].Title = "changed"
	c.Days[0].Activities[0].Title = "changed"

	assert.Equal(t, "D1", orig.Days[0].Title)
	assert.Equal(t, "Tram 28", orig.Days[0].Activities[0].Title)
}

func TestTripMoveDay(t *testing.T) {
	trip := twoDayTrip()

	got, err := trip.MoveDay(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Days[0].ID)
	assert.Equal(t, "a", got.Days[1].ID)
	assert.Equal(t, "a", trip.Days[0].ID, "original trip must not change")

	_, err = trip.MoveDay(0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTripMoveActivity(t *testing.T) {
	tests := []struct {
		name     string
		actID    string
		from, to string
		wantErr  error
		wantDayA []string
		wantDayB []string
	}{
		{
			name:     "cross-day move appends to target",
			actID:    "act1",
			from:     "a",
			to:       "b",
			wantDayA: []string{"act2"},
			wantDayB: []string{"act3", "act1"},
		},
		{
			name:     "same-day move goes to end",
			actID:    "act1",
			from:     "a",
			to:       "a",
			wantDayA: []string{"act2", "act1"},
			wantDayB: []string{"act3"},
		},
		{
			name:     "activity not in source day",
			actID:    "act3",
			from:     "a",
			to:       "b",
			wantErr:  ErrNotFound,
			wantDayA: []string{"act1", "act2"},
			wantDayB: []string{"act3"},
		},
		{
			name:     "unknown target day",
			actID:    "act1",
			from:     "a",
			to:       "zzz",
			wantErr:  ErrNotFound,
			wantDayA: []string{"act1", "act2"},
			wantDayB: []string{"act3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := twoDayTrip()
			got, err := trip.MoveActivity(tt.actID, tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDayA, activityIDs(got.Days[0]))
			assert.Equal(t, tt.wantDayB, activityIDs(got.Days[1]))
			assert.Equal(t, trip.ActivityCount(), got.ActivityCount())
			assert.Equal(t, []string{"act1", "act2"}, activityIDs(trip.Days[0]), "original trip must not change")
		})
	}
}

func TestTripDayCRUD(t *testing.T) {
	trip := twoDayTrip()

	day := NewDay("D3", "")
	withDay := trip.WithDay(day)
	require.Len(t, withDay.Days, 3)
	assert.Equal(t, day.ID, withDay.Days[2].ID)
	assert.Len(t, trip.Days, 2)

	renamed := day
	renamed.Title = "Sintra"
	replaced, err := withDay.ReplaceDay(renamed)
	require.NoError(t, err)
	assert.Equal(t, "Sintra", replaced.Days[2].Title)
	assert.Equal(t, day.ID, replaced.Days[2].ID)

	_, err = trip.ReplaceDay(Day{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	removed := replaced.RemoveDay("a")
	require.Len(t, removed.Days, 2)
	assert.Equal(t, "b", removed.Days[0].ID)
	assert.Len(t, replaced.RemoveDay("missing").Days, 3)
}

func TestTripActivityCRUD(t *testing.T) {
	trip := twoDayTrip()

	act := NewActivity("Fado night", ActivityOther, "21:00")
	added, err := trip.WithActivity("b", act)
	require.NoError(t, err)
	assert.Equal(t, []string{"act3", act.ID}, activityIDs(added.Days[1]))
	assert.Equal(t, []string{"act3"}, activityIDs(trip.Days[1]))

	_, err = trip.WithActivity("missing", act)
	assert.ErrorIs(t, err, ErrNotFound)

	act.Location = "Alfama"
	replaced, err := added.ReplaceActivity("b", act)
	require.NoError(t, err)
	dayID, got, ok := replaced.FindActivity(act.ID)
	require.True(t, ok)
	assert.Equal(t, "b", dayID)
	assert.Equal(t, "Alfama", got.Location)

	_, err = added.ReplaceActivity("a", act)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := replaced.RemoveActivity("b", act.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"act3"}, activityIDs(removed.Days[1]))
}

func TestTripValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Trip)
		wantErr error
	}{
		{name: "valid trip", mutate: func(*Trip) {}},
		{name: "missing title", mutate: func(tr *Trip) { tr.Title = " " }, wantErr: ErrValidation},
		{name: "bad start date", mutate: func(tr *Trip) { tr.StartDate = "20/05/2025" }, wantErr: ErrValidation},
		{
			name: "end before start",
			mutate: func(tr *Trip) {
				tr.StartDate = "2025-05-25"
				tr.EndDate = "2025-05-20"
			},
			wantErr: ErrValidation,
		},
		{
			name: "end equals start",
			mutate: func(tr *Trip) {
				tr.StartDate = "2025-05-20"
				tr.EndDate = "2025-05-20"
			},
		},
		{name: "day without title", mutate: func(tr *Trip) { tr.Days[0].Title = "" }, wantErr: ErrValidation},
		{name: "bad day date", mutate: func(tr *Trip) { tr.Days[1].Date = "tomorrow" }, wantErr: ErrValidation},
		{name: "unknown activity type", mutate: func(tr *Trip) { tr.Days[0].Activities[0].Type = "spa" }, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := twoDayTrip()
			tt.mutate(&trip)
			err := trip.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseActivityType(t *testing.T) {
	got, err := ParseActivityType("Museum")
	require.NoError(t, err)
	assert.Equal(t, ActivityMuseum, got)

	got, err = ParseActivityType("")
	require.NoError(t, err)
	assert.Equal(t, ActivityOther, got)

	_, err = ParseActivityType("spa")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTripKey(t *testing.T) {
	assert.Equal(t, "trip-abc", TripKey("abc"))
	assert.True(t, ValidKey(TripKey(NewID())))
	assert.True(t, ValidKey(TripIndexKey))
	assert.False(t, ValidKey(""))
	assert.False(t, ValidKey("../etc/passwd"))
	assert.False(t, ValidKey(".hidden"))
	assert.False(t, ValidKey("trip id"))
}

func TestValidTripID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "abc", want: true},
		{id: NewID(), want: true},
		{id: "", want: false},
		{id: "ids", want: false},
		{id: "a b", want: false},
		{id: "../x", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTripID(tt.id))
		})
	}
}

func activityIDs(d Day) []string {
	ids := make([]string, 0, len(d.Activities))
	for _, a := range d.Activities {
		ids = append(ids, a.ID)
	}
	return ids
}
