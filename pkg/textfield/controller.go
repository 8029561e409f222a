package textfield

import (
	"sync"

	"github.com/go-drift/dyntype/internal/listener"
)

// Affinity describes which side of a position the caret prefers.
type Affinity int

const (
	// AffinityUpstream places the caret at the end of the previous character.
	AffinityUpstream Affinity = iota
	// AffinityDownstream places the caret at the start of the next character.
	AffinityDownstream
)

// Range is a byte range of text.
type Range struct {
	Start int
	End   int
}

// IsEmpty reports whether the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid reports whether both ends are non-negative.
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.End >= 0
}

// NoRange is the invalid range used when nothing is being composed.
var NoRange = Range{Start: -1, End: -1}

// Selection is the selected byte range. Base is where the selection started
// and Extent where it ended, so Extent may precede Base.
type Selection struct {
	Base     int
	Extent   int
	Affinity Affinity
}

// Start returns the smaller offset.
func (s Selection) Start() int {
	return min(s.Base, s.Extent)
}

// End returns the larger offset.
func (s Selection) End() int {
	return max(s.Base, s.Extent)
}

// IsCollapsed reports whether the selection is just a caret.
func (s Selection) IsCollapsed() bool {
	return s.Base == s.Extent
}

// Collapsed returns a caret at offset.
func Collapsed(offset int) Selection {
	return Selection{Base: offset, Extent: offset, Affinity: AffinityDownstream}
}

func (s Selection) clamp(n int) Selection {
	s.Base = max(0, min(s.Base, n))
	s.Extent = max(0, min(s.Extent, n))
	return s
}

// Value is the complete editing state.
type Value struct {
	Text      string
	Selection Selection
	// Composing is the range an input method is still composing, or NoRange.
	Composing Range
}

// IsComposing reports whether an input method composition is active.
func (v Value) IsComposing() bool {
	return v.Composing.IsValid() && !v.Composing.IsEmpty()
}

// Controller owns the editing state of a text field. It is safe for
// concurrent use; listeners run on the goroutine that made the change.
type Controller struct {
	mu        sync.RWMutex
	value     Value
	listeners listener.Set[Value]
}

// NewController returns a controller holding text with the caret at its
// end.
func NewController(text string) *Controller {
	return &Controller{value: Value{
		Text:      text,
		Selection: Collapsed(len(text)),
		Composing: NoRange,
	}}
}

// Text returns the current text.
func (c *Controller) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Text
}

// SetText replaces the text, pulling a selection beyond the new end back
// onto it.
func (c *Controller) SetText(text string) {
	c.update(func(v *Value) {
		v.Text = text
		v.Selection = v.Selection.clamp(len(text))
		v.Composing = NoRange
	})
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Selection
}

// SetSelection replaces the selection, clamped to the text.
func (c *Controller) SetSelection(s Selection) {
	c.update(func(v *Value) {
		v.Selection = s.clamp(len(v.Text))
	})
}

// CollapseToEnd moves the caret to the end of the text.
func (c *Controller) CollapseToEnd() {
	c.update(func(v *Value) {
		v.Selection = Collapsed(len(v.Text))
	})
}

// Value returns the complete editing state.
func (c *Controller) Value() Value {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue replaces the complete editing state.
func (c *Controller) SetValue(v Value) {
	c.update(func(cur *Value) {
		*cur = v
		cur.Selection = v.Selection.clamp(len(v.Text))
	})
}

// Clear removes all text.
func (c *Controller) Clear() {
	c.SetText("")
}

// AddListener registers fn to be called with every new value. The returned
// function unregisters fn.
func (c *Controller) AddListener(fn func(Value)) func() {
	c.mu.Lock()
	remove := c.listeners.Add(fn)
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		remove()
		c.mu.Unlock()
	}
}

func (c *Controller) update(fn func(*Value)) {
	c.mu.Lock()
	fn(&c.value)
	value := c.value
	fns := c.listeners.Snapshot()
	c.mu.Unlock()

	listener.Call("textfield.Controller.notify", fns, value)
}
