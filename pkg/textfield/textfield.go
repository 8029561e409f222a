// Package textfield provides text field and search bar controllers whose
// font size follows the user's preferred text size.
package textfield

import (
	"sync"

	"github.com/go-drift/dyntype/internal/listener"
	"github.com/go-drift/dyntype/pkg/dyntype"
)

// TextField binds an editing controller to dynamic type preferences. Its
// font size is the point size of its text style at the current category.
type TextField struct {
	controller *Controller
	prefs      *dyntype.Preferences
	style      dyntype.TextStyle

	mu          sync.Mutex
	fontSize    float64
	listeners   listener.Set[float64]
	unsubscribe func()
}

// NewTextField returns a field editing c. A nil c starts with an empty
// controller.
func NewTextField(c *Controller, prefs *dyntype.Preferences, style dyntype.TextStyle) *TextField {
	return newTextField(c, prefs, style, nil)
}

func newTextField(c *Controller, prefs *dyntype.Preferences, style dyntype.TextStyle, after func()) *TextField {
	if c == nil {
		c = NewController("")
	}
	if prefs == nil {
		panic("textfield: nil preferences")
	}
	f := &TextField{
		controller: c,
		prefs:      prefs,
		style:      style,
		fontSize:   style.PointSize(prefs.Category()),
	}
	f.unsubscribe = prefs.AddListener(func(category dyntype.ContentSizeCategory) {
		f.categoryChanged(category)
		if after != nil {
			after()
		}
	})
	return f
}

// Controller returns the editing controller.
func (f *TextField) Controller() *Controller {
	return f.controller
}

// Style returns the text style.
func (f *TextField) Style() dyntype.TextStyle {
	return f.style
}

// FontSize returns the current font size in points.
func (f *TextField) FontSize() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fontSize
}

// AddFontListener registers fn to be called with every new font size. The
// returned function unregisters fn.
func (f *TextField) AddFontListener(fn func(float64)) func() {
	f.mu.Lock()
	remove := f.listeners.Add(fn)
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		remove()
		f.mu.Unlock()
	}
}

// Dispose stops following the preferences.
func (f *TextField) Dispose() {
	f.mu.Lock()
	unsubscribe := f.unsubscribe
	f.unsubscribe = nil
	f.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (f *TextField) categoryChanged(c dyntype.ContentSizeCategory) {
	size := f.style.PointSize(c)
	f.mu.Lock()
	if size == f.fontSize {
		f.mu.Unlock()
		return
	}
	f.fontSize = size
	fns := f.listeners.Snapshot()
	f.mu.Unlock()

	listener.Call("textfield.TextField.font", fns, size)
}

// SearchBar is a text field that also moves the caret to the end of the
// text whenever the text size changes, discarding any selection.
type SearchBar struct {
	*TextField
}

// NewSearchBar returns a search bar editing c. A nil c starts with an empty
// controller.
func NewSearchBar(c *Controller, prefs *dyntype.Preferences, style dyntype.TextStyle) *SearchBar {
	b := &SearchBar{}
	b.TextField = newTextField(c, prefs, style, func() {
		b.controller.CollapseToEnd()
	})
	return b
}
