package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/picker"
	"github.com/go-drift/dyntype/pkg/stepper"
	dyntest "github.com/go-drift/dyntype/pkg/testing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func newPickerModel(t *testing.T) *PickerModel {
	t.Helper()
	clock := dyntest.NewFakeClockAt(time.Date(2000, time.January, 31, 9, 15, 0, 0, time.UTC))
	return NewPickerModel(picker.New(picker.WithClock(clock)))
}

func TestPickerModelScrollsFocusedColumn(t *testing.T) {
	m := newPickerModel(t)
	require.Equal(t, 3, m.Picker().ColumnCount())
	require.Equal(t, picker.ColumnMonth, m.Picker().ColumnKind(0))
	assert.Equal(t, 1, m.reloads)

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, calendar.NewDateTime(2000, time.February, 29, 9, 15), m.Date())

	view := m.View()
	assert.Contains(t, view, "February")
	assert.Contains(t, view, "29")
	assert.Contains(t, view, "picked 2000-02-29 09:15")

	send(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("k"))
	assert.Equal(t, 1, m.Focus())
	assert.Equal(t, calendar.NewDateTime(2000, time.February, 28, 9, 15), m.Date())
}

func TestPickerModelFocusStaysInsideColumns(t *testing.T) {
	m := newPickerModel(t)
	send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Focus())
	for i := 0; i < 10; i++ {
		send(t, m, runes("l"))
	}
	assert.Equal(t, 2, m.Focus())
}

func TestPickerModelTogglesMode(t *testing.T) {
	m := newPickerModel(t)
	send(t, m, runes("t"))
	assert.Equal(t, picker.ModeDateAndTime, m.Picker().Mode())
	assert.Equal(t, 4, m.Picker().ColumnCount())
	assert.Equal(t, 2, m.reloads)
	assert.Contains(t, m.View(), "Today")

	for i := 0; i < 5; i++ {
		send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 3, m.Focus())

	send(t, m, runes("t"))
	assert.Equal(t, picker.ModeDate, m.Picker().Mode())
	assert.Equal(t, 2, m.Focus(), "focus is pulled back into the date columns")
	assert.Equal(t, calendar.NewDateTime(2000, time.January, 31, 9, 15), m.Date())
}

func TestPickerModelAcceptAndQuit(t *testing.T) {
	m := newPickerModel(t)
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Accepted())
	assert.Empty(t, m.View())

	m = newPickerModel(t)
	cmd = send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.False(t, m.Accepted())
}

func TestPickerModelHighlightsAnimatedMoves(t *testing.T) {
	m := newPickerModel(t)
	m.SelectRow(2, m.Picker().SelectedRow(2), true)
	m.SelectRow(1, m.Picker().SelectedRow(1), false)
	assert.True(t, m.moved[2])
	assert.False(t, m.moved[1])

	send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, m.moved[2], "a key press clears the highlight")
}

func newStepperModel(t *testing.T, value float64) (*StepperModel, *dyntest.FakeClock) {
	t.Helper()
	s := stepper.New()
	s.SetBounds(0, 3)
	s.SetValue(value)
	clock := dyntest.NewFakeClock()
	return NewStepperModel(s, WithScheduler(clock.AfterFunc)), clock
}

// drain delivers queued repeats the way the program would.
func drain(t *testing.T, m *StepperModel) {
	t.Helper()
	for len(m.fires) > 0 {
		send(t, m, m.waitForFire())
	}
}

func TestStepperModelPressAndHold(t *testing.T) {
	m, clock := newStepperModel(t, 0)

	cmd := send(t, m, runes("+"))
	assert.NotNil(t, cmd, "press schedules a release")
	assert.Equal(t, 1.0, m.Value())
	assert.True(t, m.Control().Plus.Pressed())

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 1.0, m.Value(), "repeats wait for the program")
	drain(t, m)
	assert.Equal(t, 2.0, m.Value())

	send(t, m, releaseMsg{direction: 1, generation: m.generation})
	assert.False(t, m.Control().Plus.Pressed())
	assert.Equal(t, 0, clock.Pending())
}

func TestStepperModelRepeatedPressExtendsHold(t *testing.T) {
	m, _ := newStepperModel(t, 0)
	send(t, m, runes("+"))
	stale := m.generation
	send(t, m, runes("+"))
	assert.Equal(t, 1.0, m.Value(), "key repeat does not step by itself")

	send(t, m, releaseMsg{direction: 1, generation: stale})
	assert.True(t, m.Control().Plus.Pressed())
}

func TestStepperModelDropsRepeatsAfterRelease(t *testing.T) {
	m, clock := newStepperModel(t, 0)
	send(t, m, runes("+"))
	clock.Advance(500 * time.Millisecond)
	send(t, m, releaseMsg{direction: 1, generation: m.generation})
	drain(t, m)
	assert.Equal(t, 1.0, m.Value())
}

func TestStepperModelOppositeKeyReleases(t *testing.T) {
	m, _ := newStepperModel(t, 2)
	send(t, m, runes("+"))
	assert.Equal(t, 3.0, m.Value())
	assert.False(t, m.Control().Plus.Enabled())

	send(t, m, runes("-"))
	assert.Equal(t, 2.0, m.Value())
	assert.True(t, m.Control().Minus.Pressed())
	assert.False(t, m.Control().Plus.Pressed())
}

func TestStepperModelViewAndQuit(t *testing.T) {
	m, clock := newStepperModel(t, 3)
	send(t, m, runes("+"))
	assert.Equal(t, 3.0, m.Value())
	assert.Contains(t, m.View(), "3")

	cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.Equal(t, 0, clock.Pending())
}
