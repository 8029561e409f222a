package tui

import "github.com/charmbracelet/bubbles/key"

type pickerKeys struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Mode   key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func newPickerKeys() pickerKeys {
	return pickerKeys{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next column")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Mode:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "date/time")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Mode, k.Accept, k.Quit}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.Mode, k.Accept, k.Quit}}
}

type stepperKeys struct {
	Decrement key.Binding
	Increment key.Binding
	Quit      key.Binding
}

func newStepperKeys() stepperKeys {
	return stepperKeys{
		Decrement: key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "decrement")),
		Increment: key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "increment")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "enter", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k stepperKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Increment, k.Quit}
}

func (k stepperKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
