package stepper

// Button is one half of a stepper control. Holding it steps repeatedly in
// its direction while it is enabled.
type Button struct {
	direction int
	stepper   *Stepper
	repeater  *Repeater
	enabled   bool
}

// Direction returns -1 for the minus button and +1 for the plus button.
func (b *Button) Direction() int {
	return b.direction
}

// Enabled reports whether the stepper can move in the button's direction.
func (b *Button) Enabled() bool {
	return b.enabled
}

// Press steps once and starts auto-repeat. Pressing a disabled button does
// nothing.
func (b *Button) Press() {
	if !b.enabled {
		return
	}
	b.repeater.Press()
}

// Release stops auto-repeat.
func (b *Button) Release() {
	b.repeater.Release()
}

// Pressed reports whether the button is held.
func (b *Button) Pressed() bool {
	return b.repeater.Pressed()
}

func (b *Button) fire() {
	if b.direction > 0 {
		b.stepper.Increment()
	} else {
		b.stepper.Decrement()
	}
}

func (b *Button) setEnabled(enabled bool) {
	b.enabled = enabled
	if !enabled {
		b.repeater.Release()
	}
}

// Control is a stepper with its minus and plus buttons. The buttons follow
// the stepper's affordances and a held button is released as soon as its
// direction becomes unavailable.
type Control struct {
	Stepper *Stepper
	Minus   *Button
	Plus    *Button

	unsubscribe func()
}

// NewControl wires buttons to s. schedule and dispatch are passed to the
// buttons' repeaters; see NewRepeater.
func NewControl(s *Stepper, policy AutoRepeat, schedule Scheduler, dispatch func(func())) *Control {
	c := &Control{Stepper: s}
	c.Minus = newButton(s, -1, policy, schedule, dispatch)
	c.Plus = newButton(s, 1, policy, schedule, dispatch)
	c.unsubscribe = s.AddAffordanceListener(c.apply)
	c.apply(s.Affordance())
	return c
}

func newButton(s *Stepper, direction int, policy AutoRepeat, schedule Scheduler, dispatch func(func())) *Button {
	b := &Button{direction: direction, stepper: s}
	b.repeater = NewRepeater(b.fire, policy, schedule, dispatch)
	return b
}

func (c *Control) apply(a Affordance) {
	c.Minus.setEnabled(a.CanDecrement)
	c.Plus.setEnabled(a.CanIncrement)
}

// Dispose releases both buttons and detaches them from the stepper.
func (c *Control) Dispose() {
	c.Minus.Release()
	c.Plus.Release()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
