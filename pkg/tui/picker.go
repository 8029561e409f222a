package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/picker"
)

// DefaultRadius is the number of rows shown above and below the selection.
const DefaultRadius = 2

// PickerModel is a bubbletea model showing a picker as a row of wheels.
// It is the picker's renderer: rows the core moves are highlighted until the
// next key press, animated moves more strongly than silent ones.
type PickerModel struct {
	picker *picker.Picker
	keys   pickerKeys
	help   help.Model
	styles Styles
	radius int

	focus    int
	moved    map[int]bool
	reloads  int
	accepted bool
	quitting bool
	status   string
}

// NewPickerModel attaches a model to p as its renderer.
func NewPickerModel(p *picker.Picker) *PickerModel {
	m := &PickerModel{
		picker: p,
		keys:   newPickerKeys(),
		help:   help.New(),
		styles: DefaultStyles(),
		radius: DefaultRadius,
		moved:  make(map[int]bool),
	}
	p.SetRenderer(m)
	p.AddListener(func(d calendar.Date) {
		m.status = "picked " + d.String()
	})
	return m
}

// SetStyles replaces the styles.
func (m *PickerModel) SetStyles(s Styles) {
	m.styles = s
}

// SetRadius sets the number of rows shown around the selection.
func (m *PickerModel) SetRadius(r int) {
	m.radius = max(0, r)
}

// Picker returns the driven picker.
func (m *PickerModel) Picker() *picker.Picker {
	return m.picker
}

// Date returns the picker's date.
func (m *PickerModel) Date() calendar.Date {
	return m.picker.Date()
}

// Accepted reports whether the user confirmed the date with enter.
func (m *PickerModel) Accepted() bool {
	return m.accepted
}

// Focus returns the focused column.
func (m *PickerModel) Focus() int {
	return m.focus
}

// SelectRow implements picker.Renderer.
func (m *PickerModel) SelectRow(column, row int, animated bool) {
	m.moved[column] = m.moved[column] || animated
}

// ReloadAllColumns implements picker.Renderer.
func (m *PickerModel) ReloadAllColumns() {
	m.reloads++
	clear(m.moved)
	if n := m.picker.ColumnCount(); m.focus >= n {
		m.focus = n - 1
	}
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *PickerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	clear(m.moved)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.focus = max(0, m.focus-1)
	case key.Matches(msg, m.keys.Right):
		m.focus = min(m.picker.ColumnCount()-1, m.focus+1)
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1)
	case key.Matches(msg, m.keys.Mode):
		if m.picker.Mode() == picker.ModeDate {
			m.picker.SetMode(picker.ModeDateAndTime)
		} else {
			m.picker.SetMode(picker.ModeDate)
		}
	}
	return nil
}

func (m *PickerModel) scroll(delta int) {
	row := m.picker.SelectedRow(m.focus) + delta
	if row < 0 || row >= m.picker.RowCount(m.focus) {
		return
	}
	m.picker.SelectRow(m.focus, row)
}

func (m *PickerModel) View() string {
	if m.quitting {
		return ""
	}
	columns := make([]string, m.picker.ColumnCount())
	for c := range columns {
		columns[c] = m.column(c)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.picker.Date().String()))
	b.WriteString("  ")
	b.WriteString(m.styles.Status.Render(m.picker.Mode().String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *PickerModel) column(c int) string {
	width := 0
	for _, s := range m.picker.WidthSamples(c) {
		width = max(width, lipgloss.Width(s))
	}

	selected := m.picker.SelectedRow(c)
	rows := m.picker.RowCount(c)
	lines := make([]string, 0, 2*m.radius+1)
	for row := selected - m.radius; row <= selected+m.radius; row++ {
		if row < 0 || row >= rows {
			lines = append(lines, "")
			continue
		}
		title := m.picker.Title(c, row)
		style := m.styles.Row
		switch {
		case row == selected && m.moved[c]:
			style = m.styles.Moved
		case row == selected:
			style = m.styles.Selected
		case !m.picker.IsRowEnabled(c, row):
			style = m.styles.Disabled
		}
		lines = append(lines, style.Width(width).Align(lipgloss.Center).Render(title))
	}

	frame := m.styles.Column
	if c == m.focus {
		frame = m.styles.Focused
	}
	return frame.Render(strings.Join(lines, "\n"))
}
