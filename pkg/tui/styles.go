// Package tui renders the picker and stepper controls in a terminal with
// bubbletea. The models are ordinary picker and stepper clients: the picker
// model implements picker.Renderer and forwards key presses as row
// selections.
package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorFocus   lipgloss.Color = "#b4befe"
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtle  lipgloss.Color = "#6c7086"
	colorSurface lipgloss.Color = "#45475a"
)

// Styles holds every style the models use.
type Styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Moved    lipgloss.Style
	Disabled lipgloss.Style
	Column   lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Held     lipgloss.Style
	Value    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the Catppuccin Mocha based styles.
func DefaultStyles() Styles {
	column := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface)
	button := lipgloss.NewStyle().Padding(0, 1).Foreground(colorText)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Row:      lipgloss.NewStyle().Foreground(colorText),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Moved:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent),
		Disabled: lipgloss.NewStyle().Faint(true).Foreground(colorSubtle),
		Column:   column,
		Focused:  column.BorderForeground(colorFocus),
		Button:   button,
		Held:     button.Reverse(true),
		Value:    lipgloss.NewStyle().Bold(true).Padding(0, 2),
		Status:   lipgloss.NewStyle().Foreground(colorSubtle),
	}
}
