package stepper

import (
	"fmt"
	"sync"
	"time"
)

// AutoRepeat is the press-and-hold policy: after the immediate first step,
// wait InitialDelay, then repeat every Interval, and every
// AcceleratedInterval once AccelerateAfter repeats have fired. An
// AccelerateAfter of zero never accelerates.
type AutoRepeat struct {
	InitialDelay        time.Duration
	Interval            time.Duration
	AccelerateAfter     int
	AcceleratedInterval time.Duration
}

// DefaultAutoRepeat waits 500ms, repeats every 150ms and speeds up to 50ms
// after 10 repeats.
func DefaultAutoRepeat() AutoRepeat {
	return AutoRepeat{
		InitialDelay:        500 * time.Millisecond,
		Interval:            150 * time.Millisecond,
		AccelerateAfter:     10,
		AcceleratedInterval: 50 * time.Millisecond,
	}
}

// Validate reports the first invalid field.
func (p AutoRepeat) Validate() error {
	switch {
	case p.InitialDelay <= 0:
		return fmt.Errorf("auto-repeat initial delay must be positive, got %s", p.InitialDelay)
	case p.Interval <= 0:
		return fmt.Errorf("auto-repeat interval must be positive, got %s", p.Interval)
	case p.AccelerateAfter < 0:
		return fmt.Errorf("auto-repeat acceleration threshold must not be negative, got %d", p.AccelerateAfter)
	case p.AccelerateAfter > 0 && p.AcceleratedInterval <= 0:
		return fmt.Errorf("auto-repeat accelerated interval must be positive, got %s", p.AcceleratedInterval)
	}
	return nil
}

// Delay returns how long to wait for the next repeat after fired repeats.
func (p AutoRepeat) Delay(fired int) time.Duration {
	switch {
	case fired <= 0:
		return p.InitialDelay
	case p.AccelerateAfter > 0 && fired >= p.AccelerateAfter:
		return p.AcceleratedInterval
	default:
		return p.Interval
	}
}

// Scheduler runs fn once after d and returns a function that cancels it.
// FakeClock.AfterFunc from the testing package satisfies it.
type Scheduler func(d time.Duration, fn func()) (stop func() bool)

// TimerScheduler schedules with time.AfterFunc.
func TimerScheduler(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Repeater turns a press-and-hold into repeated calls of fire. Timer
// callbacks run on the scheduler's goroutine and are handed to dispatch,
// which must run them on the goroutine that owns the stepper.
//
// Repeater methods are safe for concurrent use. Fires scheduled before a
// Release are dropped, even when dispatch delivers them late.
type Repeater struct {
	fire     func()
	policy   AutoRepeat
	schedule Scheduler
	dispatch func(func())

	mu         sync.Mutex
	pressed    bool
	generation int
	fired      int
	stop       func() bool
}

// NewRepeater returns a Repeater. A nil schedule uses TimerScheduler and a
// nil dispatch runs fires directly on the timer goroutine. It panics if the
// policy is invalid.
func NewRepeater(fire func(), policy AutoRepeat, schedule Scheduler, dispatch func(func())) *Repeater {
	if err := policy.Validate(); err != nil {
		panic("stepper: " + err.Error())
	}
	if schedule == nil {
		schedule = TimerScheduler
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Repeater{fire: fire, policy: policy, schedule: schedule, dispatch: dispatch}
}

// Press fires once immediately and starts repeating. Pressing an already
// pressed Repeater does nothing.
func (r *Repeater) Press() {
	r.mu.Lock()
	if r.pressed {
		r.mu.Unlock()
		return
	}
	r.pressed = true
	r.generation++
	r.fired = 0
	r.stop = r.schedule(r.policy.Delay(0), r.tick(r.generation))
	r.mu.Unlock()

	r.fire()
}

// Release stops repeating.
func (r *Repeater) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.pressed {
		return
	}
	r.pressed = false
	r.generation++
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// Pressed reports whether the Repeater is held.
func (r *Repeater) Pressed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pressed
}

// Repeats returns the number of timer fires since the last Press.
func (r *Repeater) Repeats() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired
}

func (r *Repeater) current(generation int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pressed && r.generation == generation
}

func (r *Repeater) tick(generation int) func() {
	return func() {
		r.mu.Lock()
		if !r.pressed || r.generation != generation {
			r.mu.Unlock()
			return
		}
		r.fired++
		r.stop = r.schedule(r.policy.Delay(r.fired), r.tick(generation))
		r.mu.Unlock()

		r.dispatch(func() {
			if r.current(generation) {
				r.fire()
			}
		})
	}
}
