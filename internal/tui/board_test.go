package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/internal/memory"
	"github.com/mesh-intelligence/itinerary/internal/repo"
	"github.com/mesh-intelligence/itinerary/internal/state"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestBoard builds a board over the sample trip backed by a memory store.
func newTestBoard(t *testing.T) (Board, *repo.Repository) {
	t.Helper()
	r := repo.NewRepository(memory.NewAttached(), zerolog.Nop())
	_, err := r.SeedSample()
	require.NoError(t, err)

	notes := &state.Recorder{}
	st := state.New(r, notes, zerolog.Nop())
	_, err = st.LoadTripByID(repo.SampleTripID)
	require.NoError(t, err)

	bus := dnd.NewBus()
	t.Cleanup(st.Listen(bus))

	b := New(st, bus, notes, zerolog.Nop())
	m, _ := b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(Board), r
}

// press sends keys in order and runs any drain the board asks for.
func press(t *testing.T, b Board, keys ...string) Board {
	t.Helper()
	for _, k := range keys {
		m, cmd := b.Update(key(k))
		b = m.(Board)
		if cmd != nil {
			if msg, ok := cmd().(drainMsg); ok {
				m, _ = b.Update(msg)
				b = m.(Board)
			}
		}
	}
	return b
}

func dayIDs(trip types.Trip) []string {
	ids := make([]string, len(trip.Days))
	for i, d := range trip.Days {
		ids[i] = d.ID
	}
	return ids
}

func TestBoardRendersTrip(t *testing.T) {
	b, _ := newTestBoard(t)
	view := b.View()

	assert.Contains(t, view, "Paris 2025")
	assert.Contains(t, view, "Day 1: Arrival & Eiffel Tower")
	assert.Contains(t, view, "Louvre Museum")
	assert.Contains(t, view, "space")
}

func TestBoardCursorMovement(t *testing.T) {
	b, _ := newTestBoard(t)

	b = press(t, b, "l", "l", "l")
	assert.Equal(t, 2, b.col, "cursor stops at the last day")

	b = press(t, b, "j", "j", "j", "j")
	assert.Equal(t, 2, b.row, "day 3 has two activities")

	b = press(t, b, "h")
	assert.Equal(t, 1, b.col)
	b = press(t, b, "k", "k", "k")
	assert.Equal(t, 0, b.row)
}

func TestBoardDragDayToAnotherSlot(t *testing.T) {
	b, r := newTestBoard(t)

	b = press(t, b, " ")
	require.NotNil(t, b.drag)
	assert.Equal(t, dnd.Dragging, b.drag.src.State())
	assert.Contains(t, b.View(), "enter")

	b = press(t, b, "l", "l", "enter")
	assert.Nil(t, b.drag)

	cur, ok := b.store.CurrentTrip()
	require.True(t, ok)
	assert.Equal(t, []string{"day-2", "day-3", "day-1"}, dayIDs(cur))

	stored, err := r.LoadTrip(repo.SampleTripID)
	require.NoError(t, err)
	assert.Equal(t, cur, stored)
}

func TestBoardDragActivityToAnotherDay(t *testing.T) {
	b, r := newTestBoard(t)

	// Pick up "Eiffel Tower Visit" (day 1, second activity) and drop on day 3.
	b = press(t, b, "j", "j", " ", "l", "l", "enter")

	stored, err := r.LoadTrip(repo.SampleTripID)
	require.NoError(t, err)
	dayID, act, ok := stored.FindActivity("act-1-2")
	require.True(t, ok)
	assert.Equal(t, "day-3", dayID)
	assert.Equal(t, "Eiffel Tower Visit", act.Title)

	d3, _ := stored.FindDay("day-3")
	assert.Equal(t, "act-1-2", d3.Activities[len(d3.Activities)-1].ID)
	assert.Equal(t, 8, stored.ActivityCount())

	assert.Contains(t, b.View(), "Activity moved")
}

func TestBoardCancelDrag(t *testing.T) {
	b, r := newTestBoard(t)
	before, err := r.LoadTrip(repo.SampleTripID)
	require.NoError(t, err)

	b = press(t, b, " ", "l", "esc")
	assert.Nil(t, b.drag)

	after, err := r.LoadTrip(repo.SampleTripID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBoardCancelBeforeDrain(t *testing.T) {
	b, _ := newTestBoard(t)

	m, cmd := b.Update(key(" "))
	b = m.(Board)
	require.NotNil(t, cmd)
	src := b.drag.src

	b = press(t, b, "esc")
	m, _ = b.Update(cmd())
	b = m.(Board)

	assert.Equal(t, dnd.Idle, src.State())
	assert.Nil(t, b.drag)
}

func TestBoardQuit(t *testing.T) {
	b, _ := newTestBoard(t)
	_, cmd := b.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestBoardWithoutTrip(t *testing.T) {
	st := state.New(repo.NewRepository(memory.NewAttached(), zerolog.Nop()), &state.Recorder{}, zerolog.Nop())
	b := New(st, dnd.NewBus(), nil, zerolog.Nop())

	assert.True(t, strings.Contains(b.View(), "no trip selected"))
	m, cmd := b.Update(key(" "))
	assert.Nil(t, cmd)
	assert.Nil(t, m.(Board).drag)
}
