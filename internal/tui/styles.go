package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Background(lipgloss.Color("#1e1e2a")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	draggingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1e1e2a")).
			Padding(0, 1).
			Width(28)

	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("#8890a0"))

	// Drop target under the pointer.
	hoverColumnStyle = columnStyle.
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("#60a0e0"))

	activityColors = map[types.ActivityType]lipgloss.Color{
		types.ActivityFood:      lipgloss.Color("#f0944a"),
		types.ActivityMuseum:    lipgloss.Color("#b080d0"),
		types.ActivityLandmark:  lipgloss.Color("#d4a844"),
		types.ActivityShopping:  lipgloss.Color("#e06060"),
		types.ActivityTransport: lipgloss.Color("#60a0e0"),
		types.ActivityHotel:     lipgloss.Color("#3ecce4"),
		types.ActivityOther:     lipgloss.Color("#8890a0"),
	}
)

// typeBadge renders an activity type in its color.
func typeBadge(t types.ActivityType) string {
	c, ok := activityColors[t]
	if !ok {
		c = activityColors[types.ActivityOther]
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(t))
}
