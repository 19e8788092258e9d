// Package tui is a terminal board for one trip. Days are columns and
// activities are rows; keyboard gestures drive the drag bridge.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/itinerary/internal/dnd"
	"github.com/mesh-intelligence/itinerary/internal/state"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// drainMsg asks the board to run the tasks queued on its loop.
type drainMsg struct{}

// dragSession is one gesture in flight.
type dragSession struct {
	src    *dnd.Draggable
	dt     *dnd.DataTransfer
	target *dnd.Droppable
}

// Board is the root bubbletea model. The state store must already be current
// on a trip and listening on bus.
type Board struct {
	store  *state.Store
	bus    *dnd.Bus
	loop   *dnd.Loop
	notes  *state.Recorder
	log    zerolog.Logger
	col    int
	row    int // 0 is the day header, n is the n-th activity
	drag   *dragSession
	width  int
	height int
}

// New returns a board over store. notes, if not nil, feeds the status line.
func New(store *state.Store, bus *dnd.Bus, notes *state.Recorder, log zerolog.Logger) Board {
	return Board{
		store: store,
		bus:   bus,
		loop:  dnd.NewLoop(),
		notes: notes,
		log:   log,
	}
}

// Run starts the board full screen and blocks until it quits.
func Run(b Board) error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}

func (b Board) Init() tea.Cmd {
	return nil
}

func (b Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	case drainMsg:
		b.loop.Drain()
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	trip, ok := b.store.CurrentTrip()
	if !ok {
		if k := msg.String(); k == "q" || k == "ctrl+c" {
			return b, tea.Quit
		}
		return b, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if b.drag != nil {
			b.cancelDrag()
		}
		return b, tea.Quit
	case "h", "left":
		if b.col > 0 {
			b.col--
			b.retarget(trip)
		}
	case "l", "right":
		if b.col < len(trip.Days)-1 {
			b.col++
			b.retarget(trip)
		}
	case "k", "up":
		if b.row > 0 {
			b.row--
		}
	case "j", "down":
		if b.col < len(trip.Days) && b.row < len(trip.Days[b.col].Activities) {
			b.row++
		}
	case " ", "space":
		if b.drag == nil {
			return b, b.pickUp(trip)
		}
	case "enter":
		if b.drag != nil {
			b.drop()
		}
	case "esc":
		if b.drag != nil {
			b.cancelDrag()
		}
	}
	b.clamp()
	return b, nil
}

// pickUp starts a gesture on the focused day or activity. The switch of the
// source into its dragging state runs on the next drain.
func (b *Board) pickUp(trip types.Trip) tea.Cmd {
	if b.col >= len(trip.Days) {
		return nil
	}
	day := trip.Days[b.col]

	var p dnd.Payload
	if b.row == 0 {
		p = dnd.DayMove{DayID: day.ID, Index: b.col}
	} else {
		act := day.Activities[b.row-1]
		p = dnd.ActivityMove{ActivityID: act.ID, Index: b.row - 1, DayID: day.ID}
	}

	log := b.log
	s := &dragSession{
		src: dnd.NewDraggable(p, b.loop, func(st dnd.State) {
			log.Debug().Str("item", p.ItemID()).Stringer("state", st).Msg("drag state")
		}),
		dt: dnd.NewDataTransfer(),
	}
	if err := s.src.DragStart(s.dt); err != nil {
		b.log.Error().Err(err).Msg("drag start")
		return nil
	}
	b.drag = s
	b.retarget(trip)
	return func() tea.Msg { return drainMsg{} }
}

// retarget moves the hover to the droppable under the cursor column.
func (b *Board) retarget(trip types.Trip) {
	if b.drag == nil || b.col >= len(trip.Days) {
		return
	}
	if b.drag.target != nil {
		b.drag.target.DragLeave(true)
	}

	var t *dnd.Droppable
	switch b.drag.src.Payload().Kind() {
	case dnd.KindDay:
		t = dnd.NewDroppable(dnd.KindDay, b.bus, dnd.WithIndex(b.col), dnd.WithLogger(b.log))
	default:
		t = dnd.NewDroppable(dnd.KindActivity, b.bus, dnd.WithDayID(trip.Days[b.col].ID), dnd.WithLogger(b.log))
	}
	t.DragOver(b.drag.dt)
	b.drag.target = t
}

func (b *Board) drop() {
	if b.drag.target != nil {
		b.drag.target.Drop(b.drag.dt)
	}
	b.drag.src.DragEnd()
	b.drag = nil
	b.loop.Drain()
}

func (b *Board) cancelDrag() {
	if b.drag.target != nil {
		b.drag.target.DragLeave(true)
	}
	b.drag.src.DragEnd()
	b.drag = nil
	b.loop.Drain()
}

func (b *Board) clamp() {
	trip, ok := b.store.CurrentTrip()
	if !ok || len(trip.Days) == 0 {
		b.col, b.row = 0, 0
		return
	}
	b.col = max(0, min(b.col, len(trip.Days)-1))
	b.row = max(0, min(b.row, len(trip.Days[b.col].Activities)))
}

// dragging reports whether id is the source of the gesture in flight and has
// switched to its dragging state.
func (b Board) dragging(id string) bool {
	return b.drag != nil && b.drag.src.Payload().ItemID() == id && b.drag.src.State() == dnd.Dragging
}

func (b Board) View() string {
	trip, ok := b.store.CurrentTrip()
	if !ok {
		return dimStyle.Render("no trip selected") + "\n"
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(trip.Title))
	if trip.Destination != "" {
		s.WriteString(dimStyle.Render("  " + trip.Destination))
	}
	if trip.StartDate != "" {
		s.WriteString(dimStyle.Render(fmt.Sprintf("  %s → %s", trip.StartDate, trip.EndDate)))
	}
	s.WriteString("\n\n")

	if len(trip.Days) == 0 {
		s.WriteString(dimStyle.Render("No days in itinerary yet.") + "\n")
	} else {
		cols := make([]string, len(trip.Days))
		for i, d := range trip.Days {
			cols[i] = b.renderDay(i, d)
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		s.WriteString("\n")
	}

	s.WriteString("\n" + b.statusLine() + "\n")
	s.WriteString(b.helpLine())
	return s.String()
}

func (b Board) renderDay(i int, d types.Day) string {
	var s strings.Builder

	header := d.Title
	if d.Date != "" {
		header += dimStyle.Render(" " + d.Date)
	}
	switch {
	case b.dragging(d.ID):
		s.WriteString(draggingStyle.Render(d.Title))
	case i == b.col && b.row == 0:
		s.WriteString(selectedStyle.Render(header))
	default:
		s.WriteString(titleStyle.Render(header))
	}
	s.WriteString("\n")

	if len(d.Activities) == 0 {
		s.WriteString(dimStyle.Render("drop activities here"))
	}
	for j, a := range d.Activities {
		line := a.Title
		if a.Time != "" {
			line = a.Time + " " + line
		}
		switch {
		case b.dragging(a.ID):
			line = draggingStyle.Render(line)
		case i == b.col && b.row == j+1:
			line = selectedStyle.Render(line)
		default:
			line = normalStyle.Render(line)
		}
		s.WriteString(line + " " + typeBadge(a.Type))
		if j < len(d.Activities)-1 {
			s.WriteString("\n")
		}
	}

	style := columnStyle
	switch {
	case b.drag != nil && b.drag.target != nil && b.drag.target.IsOver() && i == b.col:
		style = hoverColumnStyle
	case i == b.col:
		style = focusedColumnStyle
	}
	return style.Render(s.String())
}

func (b Board) statusLine() string {
	if b.notes == nil {
		return ""
	}
	n, ok := b.notes.Last()
	if !ok {
		return ""
	}
	text := n.Title
	if n.Message != "" {
		text += ": " + n.Message
	}
	if n.Level == state.LevelError {
		return errorStyle.Render(text)
	}
	return okStyle.Render(text)
}

func (b Board) helpLine() string {
	keys := [][2]string{{"h/l", "day"}, {"j/k", "item"}, {"space", "pick up"}, {"q", "quit"}}
	if b.drag != nil {
		keys = [][2]string{{"h/l", "move"}, {"enter", "drop"}, {"esc", "cancel"}}
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = helpKeyStyle.Render(k[0]) + " " + helpLabelStyle.Render(k[1])
	}
	return strings.Join(parts, "  ")
}
