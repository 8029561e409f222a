// Package listener implements the callback registries shared by the controls.
package listener

import (
	"slices"

	"github.com/go-drift/dyntype/pkg/errors"
)

type entry[T any] struct {
	id int
	fn func(T)
}

// Set is an ordered set of callbacks. It is not safe for concurrent use;
// owners that are shared between goroutines guard it themselves.
type Set[T any] struct {
	nextID  int
	entries []entry[T]
}

// Add registers fn and returns a function that removes it again. Calling the
// returned function more than once is harmless.
func (s *Set[T]) Add(fn func(T)) func() {
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, entry[T]{id: id, fn: fn})
	return func() {
		s.entries = slices.DeleteFunc(s.entries, func(e entry[T]) bool {
			return e.id == id
		})
	}
}

// Len returns the number of registered callbacks.
func (s *Set[T]) Len() int {
	return len(s.entries)
}

// Clear removes every callback.
func (s *Set[T]) Clear() {
	s.entries = nil
}

// Snapshot returns the registered callbacks in registration order.
func (s *Set[T]) Snapshot() []func(T) {
	fns := make([]func(T), len(s.entries))
	for i, e := range s.entries {
		fns[i] = e.fn
	}
	return fns
}

// Notify calls every callback registered when Notify starts, in registration
// order. A panicking callback is reported under op and does not stop the
// remaining callbacks.
func (s *Set[T]) Notify(op string, value T) {
	Call(op, s.Snapshot(), value)
}

// Call invokes fns with value, recovering panics.
func Call[T any](op string, fns []func(T), value T) {
	for _, fn := range fns {
		invoke(op, fn, value)
	}
}

func invoke[T any](op string, fn func(T), value T) {
	defer errors.Recover(op)
	fn(value)
}
