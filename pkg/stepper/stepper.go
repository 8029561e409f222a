// Package stepper implements a bounded numeric stepper: the value model
// behind a pair of minus/plus buttons, the enabled state of those buttons and
// the press-and-hold auto-repeat that drives them.
package stepper

import (
	"math"

	"github.com/go-drift/dyntype/internal/listener"
	"github.com/go-drift/dyntype/pkg/errors"
)

// State is the value model of a Stepper. The value is Original plus Steps
// times StepSize, so repeated stepping never accumulates rounding error.
type State struct {
	Original float64
	Steps    int
	StepSize float64
	Minimum  float64
	Maximum  float64
}

// Value returns the current value.
func (s State) Value() float64 {
	return s.Original + float64(s.Steps)*s.StepSize
}

// tolerance absorbs floating point error when comparing a stepped value with
// a bound.
func (s State) tolerance() float64 {
	return 1e-9 * s.StepSize
}

func (s State) canStep(direction int) bool {
	next := s.Original + float64(s.Steps+direction)*s.StepSize
	if direction > 0 {
		return next <= s.Maximum+s.tolerance()
	}
	return next >= s.Minimum-s.tolerance()
}

// Affordance reports which directions can currently be stepped.
type Affordance struct {
	CanDecrement bool
	CanIncrement bool
}

// Stepper holds a value between a minimum and a maximum that changes in
// fixed steps.
//
// Stepper is not safe for concurrent use; timer driven repeats reach it
// through the dispatch function of a Repeater.
type Stepper struct {
	state State

	listeners           listener.Set[float64]
	affordanceListeners listener.Set[Affordance]
}

// New returns a stepper with value 0, minimum 0, maximum 100 and step size 1.
func New() *Stepper {
	return &Stepper{state: State{StepSize: 1, Minimum: 0, Maximum: 100}}
}

// State returns a copy of the value model.
func (s *Stepper) State() State {
	return s.state
}

// Value returns the current value.
func (s *Stepper) Value() float64 {
	return s.state.Value()
}

// Minimum returns the lower bound.
func (s *Stepper) Minimum() float64 {
	return s.state.Minimum
}

// Maximum returns the upper bound.
func (s *Stepper) Maximum() float64 {
	return s.state.Maximum
}

// StepSize returns the amount added or removed per step.
func (s *Stepper) StepSize() float64 {
	return s.state.StepSize
}

// Affordance returns which directions can currently be stepped.
func (s *Stepper) Affordance() Affordance {
	return Affordance{
		CanDecrement: s.state.canStep(-1),
		CanIncrement: s.state.canStep(1),
	}
}

// AddListener registers fn to be called with every new value. The returned
// function unregisters fn.
func (s *Stepper) AddListener(fn func(float64)) func() {
	return s.listeners.Add(fn)
}

// AddAffordanceListener registers fn to be called whenever the affordances
// are re-evaluated, including after a step that was refused at a bound.
func (s *Stepper) AddAffordanceListener(fn func(Affordance)) func() {
	return s.affordanceListeners.Add(fn)
}

// Increment adds one step. It reports false, leaving the value unchanged,
// when the step would cross the maximum.
func (s *Stepper) Increment() bool {
	return s.step(1)
}

// Decrement removes one step. It reports false, leaving the value
// unchanged, when the step would cross the minimum.
func (s *Stepper) Decrement() bool {
	return s.step(-1)
}

func (s *Stepper) step(direction int) bool {
	if !s.state.canStep(direction) {
		s.refresh()
		return false
	}
	s.state.Steps += direction
	s.notify()
	s.refresh()
	return true
}

// SetValue rebases the stepper on v and resets the step count. The value is
// taken as is, even outside the bounds.
func (s *Stepper) SetValue(v float64) {
	s.state.Original = v
	s.state.Steps = 0
	s.notify()
	s.refresh()
}

// SetMinimum replaces the lower bound. It panics with an
// *errors.ConfigError unless minimum is below the maximum. A value below the new
// bound is clamped to it.
func (s *Stepper) SetMinimum(minimum float64) {
	s.SetBounds(minimum, s.state.Maximum)
}

// SetMaximum replaces the upper bound. It panics with an
// *errors.ConfigError unless maximum is above the minimum. A value above the new
// bound is clamped to it.
func (s *Stepper) SetMaximum(maximum float64) {
	s.SetBounds(s.state.Minimum, maximum)
}

// SetBounds replaces both bounds at once. Both must be finite.
func (s *Stepper) SetBounds(minimum, maximum float64) {
	if !finite(minimum) || !finite(maximum) {
		errors.Configf("stepper.Stepper.SetBounds", "bounds %g and %g must be finite", minimum, maximum)
	}
	if minimum >= maximum {
		errors.Configf("stepper.Stepper.SetBounds", "minimum %g must be below maximum %g", minimum, maximum)
	}
	s.state.Minimum = minimum
	s.state.Maximum = maximum
	s.clamp()
}

// SetStepSize replaces the step size. It panics with an *errors.ConfigError
// unless size is positive. The value is rebased first so it does not move.
func (s *Stepper) SetStepSize(size float64) {
	if !finite(size) || size <= 0 {
		errors.Configf("stepper.Stepper.SetStepSize", "step size %g must be positive", size)
	}
	s.state.Original = s.state.Value()
	s.state.Steps = 0
	s.state.StepSize = size
	s.clamp()
}

func (s *Stepper) clamp() {
	switch v := s.state.Value(); {
	case v < s.state.Minimum:
		s.SetValue(s.state.Minimum)
	case v > s.state.Maximum:
		s.SetValue(s.state.Maximum)
	default:
		s.refresh()
	}
}

func (s *Stepper) notify() {
	s.listeners.Notify("stepper.Stepper.notify", s.state.Value())
}

func (s *Stepper) refresh() {
	s.affordanceListeners.Notify("stepper.Stepper.affordance", s.Affordance())
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
