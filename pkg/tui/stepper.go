package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/dyntype/pkg/stepper"
)

// DefaultHoldTimeout is how long a button stays held after the last key
// press. Terminals report key repeats but never key releases, so a held
// key is detected as a stream of presses.
const DefaultHoldTimeout = 600 * time.Millisecond

var (
	_ tea.Model = (*PickerModel)(nil)
	_ tea.Model = (*StepperModel)(nil)
)

// fireMsg carries a repeat from the timer goroutine to the program.
type fireMsg struct{ fn func() }

// releaseMsg releases a button unless it was pressed again since.
type releaseMsg struct {
	direction  int
	generation int
}

// StepperModel is a bubbletea model for a stepper control. Auto-repeat runs
// on the control's repeaters; their fires are delivered to Update so the
// stepper is only touched from the program goroutine.
type StepperModel struct {
	control *stepper.Control
	fires   chan func()
	keys    stepperKeys
	help    help.Model
	styles  Styles
	hold    time.Duration

	generation int
	quitting   bool
}

// StepperOption configures a StepperModel.
type StepperOption func(*stepperOptions)

type stepperOptions struct {
	policy   stepper.AutoRepeat
	schedule stepper.Scheduler
	hold     time.Duration
}

// WithAutoRepeat sets the press-and-hold policy.
func WithAutoRepeat(p stepper.AutoRepeat) StepperOption {
	return func(o *stepperOptions) { o.policy = p }
}

// WithScheduler sets the scheduler of the repeaters. Tests pass a fake
// clock's AfterFunc.
func WithScheduler(s stepper.Scheduler) StepperOption {
	return func(o *stepperOptions) { o.schedule = s }
}

// WithHoldTimeout sets how long a key counts as held after its last press.
func WithHoldTimeout(d time.Duration) StepperOption {
	return func(o *stepperOptions) { o.hold = d }
}

// NewStepperModel returns a model driving s.
func NewStepperModel(s *stepper.Stepper, opts ...StepperOption) *StepperModel {
	o := stepperOptions{
		policy: stepper.DefaultAutoRepeat(),
		hold:   DefaultHoldTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	m := &StepperModel{
		fires:  make(chan func(), 16),
		keys:   newStepperKeys(),
		help:   help.New(),
		styles: DefaultStyles(),
		hold:   o.hold,
	}
	m.control = stepper.NewControl(s, o.policy, o.schedule, func(fn func()) {
		m.fires <- fn
	})
	return m
}

// Control returns the stepper control.
func (m *StepperModel) Control() *stepper.Control {
	return m.control
}

// Value returns the stepper's value.
func (m *StepperModel) Value() float64 {
	return m.control.Stepper.Value()
}

// SetStyles replaces the styles.
func (m *StepperModel) SetStyles(s Styles) {
	m.styles = s
}

// Init starts listening for repeats.
func (m *StepperModel) Init() tea.Cmd {
	return m.waitForFire
}

func (m *StepperModel) waitForFire() tea.Msg {
	return fireMsg{fn: <-m.fires}
}

func (m *StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case fireMsg:
		msg.fn()
		return m, m.waitForFire
	case releaseMsg:
		if msg.generation == m.generation {
			m.button(msg.direction).Release()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.control.Dispose()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Decrement):
			return m, m.press(-1)
		case key.Matches(msg, m.keys.Increment):
			return m, m.press(1)
		}
	}
	return m, nil
}

// press holds the button of direction, releasing the other one. Repeated
// presses of a held button only extend the hold.
func (m *StepperModel) press(direction int) tea.Cmd {
	m.button(-direction).Release()
	m.button(direction).Press()
	m.generation++
	release := releaseMsg{direction: direction, generation: m.generation}
	return tea.Tick(m.hold, func(time.Time) tea.Msg { return release })
}

func (m *StepperModel) button(direction int) *stepper.Button {
	if direction < 0 {
		return m.control.Minus
	}
	return m.control.Plus
}

func (m *StepperModel) View() string {
	if m.quitting {
		return ""
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderButton(m.control.Minus, "−"),
		m.styles.Value.Render(strconv.FormatFloat(m.Value(), 'f', -1, 64)),
		m.renderButton(m.control.Plus, "+"),
	)
	return row + "\n" + m.help.View(m.keys)
}

func (m *StepperModel) renderButton(b *stepper.Button, label string) string {
	switch {
	case !b.Enabled():
		return m.styles.Button.Inherit(m.styles.Disabled).Render(label)
	case b.Pressed():
		return m.styles.Held.Render(label)
	default:
		return m.styles.Button.Render(label)
	}
}
