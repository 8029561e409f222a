package dyntype

import (
	"sync"

	"github.com/go-drift/dyntype/internal/listener"
)

// Preferences holds the current content size category. It is safe for
// concurrent use; listeners run on the goroutine that changed the category.
type Preferences struct {
	mu        sync.Mutex
	category  ContentSizeCategory
	listeners listener.Set[ContentSizeCategory]
}

// NewPreferences returns preferences starting at c. An unknown category
// starts at DefaultCategory.
func NewPreferences(c ContentSizeCategory) *Preferences {
	if !c.valid() {
		c = DefaultCategory
	}
	return &Preferences{category: c}
}

// Category returns the current category.
func (p *Preferences) Category() ContentSizeCategory {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.category
}

// SetCategory changes the category and notifies listeners. Setting the
// current category, or an unknown one, does nothing.
func (p *Preferences) SetCategory(c ContentSizeCategory) {
	if !c.valid() {
		return
	}
	p.mu.Lock()
	if c == p.category {
		p.mu.Unlock()
		return
	}
	p.category = c
	fns := p.listeners.Snapshot()
	p.mu.Unlock()

	listener.Call("dyntype.Preferences.SetCategory", fns, c)
}

// AddListener registers fn to be called with every new category. The
// returned function unregisters fn.
func (p *Preferences) AddListener(fn func(ContentSizeCategory)) func() {
	p.mu.Lock()
	remove := p.listeners.Add(fn)
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		remove()
		p.mu.Unlock()
	}
}
