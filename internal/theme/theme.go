package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rmaia/checkme/internal/format"
)

// ColorOption is one entry of the accent palette offered when creating
// or recoloring a checklist or item.
type ColorOption struct {
	ID    string
	Label string
	Value string
}

// ChecklistColors is the accent palette, labeled in pt-BR like the rest
// of the user-facing strings.
var ChecklistColors = []ColorOption{
	{ID: "blue", Label: "Azul", Value: "#2563EB"},
	{ID: "cyan", Label: "Ciano", Value: "#0891B2"},
	{ID: "purple", Label: "Roxo", Value: "#7C3AED"},
	{ID: "pink", Label: "Rosa", Value: "#DB2777"},
	{ID: "orange", Label: "Laranja", Value: "#F97316"},
	{ID: "yellow", Label: "Amarelo", Value: "#FACC15"},
	{ID: "green", Label: "Verde", Value: "#22C55E"},
	{ID: "slate", Label: "Grafite", Value: "#64748B"},
}

// HeaderStyle is used for the title line of rendered checklists.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1)

// DoneStyle renders completed item lines.
var DoneStyle = lipgloss.NewStyle().
	Strikethrough(true).
	Foreground(lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"})

// AmountStyle renders monetary totals.
var AmountStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"})

// ScheduleStyle returns a tone-coded style for a schedule state: blue
// for today, yellow for upcoming, red for overdue.
func ScheduleStyle(state format.ScheduleState) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch state {
	case format.ScheduleToday:
		return base.Foreground(lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"})
	case format.ScheduleUpcoming:
		return base.Foreground(lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"})
	default:
		return base.Foreground(lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"})
	}
}
