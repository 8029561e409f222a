package stepper

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/dyntype/pkg/errors"
	dyntest "github.com/go-drift/dyntype/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBounded(t *testing.T, min, max, step, value float64) *Stepper {
	t.Helper()
	s := New()
	s.SetBounds(min, max)
	s.SetStepSize(step)
	s.SetValue(value)
	return s
}

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, 0.0, s.Minimum())
	assert.Equal(t, 100.0, s.Maximum())
	assert.Equal(t, 1.0, s.StepSize())
	assert.Equal(t, Affordance{CanDecrement: false, CanIncrement: true}, s.Affordance())
}

func TestBoundaries(t *testing.T) {
	s := newBounded(t, 0, 10, 1, 10)
	var values []float64
	s.AddListener(func(v float64) { values = append(values, v) })

	assert.False(t, s.Increment())
	assert.Equal(t, 10.0, s.Value())
	assert.Empty(t, values)

	for i := 0; i < 10; i++ {
		require.True(t, s.Decrement())
	}
	assert.Equal(t, 0.0, s.Value())
	assert.False(t, s.Decrement())
	assert.Equal(t, 0.0, s.Value())
	assert.Len(t, values, 10)
}

func TestRebasing(t *testing.T) {
	s := newBounded(t, 0, 10, 1, 0)
	s.Increment()
	s.Increment()
	s.Decrement()

	s.SetValue(5)
	assert.Equal(t, 0, s.State().Steps)
	assert.Equal(t, 5.0, s.State().Original)
	s.Increment()
	assert.Equal(t, 6.0, s.Value())
}

func TestFractionalStepsReachBounds(t *testing.T) {
	s := newBounded(t, 0, 1, 0.1, 0)
	for i := 0; i < 10; i++ {
		require.True(t, s.Increment(), "step %d", i+1)
	}
	assert.InDelta(t, 1.0, s.Value(), 1e-12)
	assert.False(t, s.Increment())
	assert.False(t, s.Affordance().CanIncrement)
}

func TestStepThatWouldOvershootIsRefused(t *testing.T) {
	s := newBounded(t, 0, 10, 3, 9)
	assert.False(t, s.Affordance().CanIncrement)
	assert.False(t, s.Increment())
	assert.Equal(t, 9.0, s.Value())
}

func TestRefusedStepStillRefreshesAffordances(t *testing.T) {
	s := newBounded(t, 0, 10, 1, 10)
	var got []Affordance
	s.AddAffordanceListener(func(a Affordance) { got = append(got, a) })

	s.Increment()
	require.Len(t, got, 1)
	assert.Equal(t, Affordance{CanDecrement: true, CanIncrement: false}, got[0])
}

func TestSetBoundsClamps(t *testing.T) {
	s := newBounded(t, 0, 100, 1, 50)
	var values []float64
	s.AddListener(func(v float64) { values = append(values, v) })

	s.SetMaximum(20)
	assert.Equal(t, 20.0, s.Value())
	s.SetMinimum(-5)
	assert.Equal(t, 20.0, s.Value())
	s.SetMinimum(-20)
	s.SetBounds(25, 40)
	assert.Equal(t, 25.0, s.Value())
	assert.Equal(t, []float64{20, 25}, values)
}

func TestConfigurationPanics(t *testing.T) {
	s := New()
	tests := []struct {
		name string
		fn   func()
	}{
		{"min equals max", func() { s.SetBounds(5, 5) }},
		{"min above max", func() { s.SetMinimum(200) }},
		{"max below min", func() { s.SetMaximum(-1) }},
		{"infinite max", func() { s.SetMaximum(math.Inf(1)) }},
		{"infinite min", func() { s.SetMinimum(math.Inf(-1)) }},
		{"infinite bounds", func() { s.SetBounds(math.Inf(-1), math.Inf(1)) }},
		{"nan min", func() { s.SetBounds(math.NaN(), 10) }},
		{"zero step", func() { s.SetStepSize(0) }},
		{"negative step", func() { s.SetStepSize(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				_, ok := recover().(*errors.ConfigError)
				assert.True(t, ok, "expected *errors.ConfigError")
			}()
			tt.fn()
		})
	}
	assert.Equal(t, State{StepSize: 1, Maximum: 100}, s.State())
}

func TestSetStepSizeKeepsValue(t *testing.T) {
	s := newBounded(t, 0, 100, 1, 0)
	s.Increment()
	s.Increment()
	s.SetStepSize(5)
	assert.Equal(t, 2.0, s.Value())
	s.Increment()
	assert.Equal(t, 7.0, s.Value())
}

func TestReentrantListenerSeesCommittedValue(t *testing.T) {
	s := newBounded(t, 0, 10, 1, 0)
	var seen []float64
	s.AddListener(func(v float64) {
		seen = append(seen, s.Value())
		if v < 3 {
			s.Increment()
		}
	})
	s.Increment()
	assert.Equal(t, []float64{1, 2, 3}, seen)
	assert.Equal(t, 3.0, s.Value())
}

func TestAutoRepeatDelay(t *testing.T) {
	p := DefaultAutoRepeat()
	require.NoError(t, p.Validate())
	assert.Equal(t, 500*time.Millisecond, p.Delay(0))
	assert.Equal(t, 150*time.Millisecond, p.Delay(1))
	assert.Equal(t, 150*time.Millisecond, p.Delay(9))
	assert.Equal(t, 50*time.Millisecond, p.Delay(10))
	assert.Equal(t, 50*time.Millisecond, p.Delay(100))

	p.AccelerateAfter = 0
	assert.Equal(t, 150*time.Millisecond, p.Delay(100))
}

func TestAutoRepeatValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AutoRepeat)
	}{
		{"initial delay", func(p *AutoRepeat) { p.InitialDelay = 0 }},
		{"interval", func(p *AutoRepeat) { p.Interval = -time.Millisecond }},
		{"threshold", func(p *AutoRepeat) { p.AccelerateAfter = -1 }},
		{"accelerated interval", func(p *AutoRepeat) { p.AcceleratedInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultAutoRepeat()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}

	p := DefaultAutoRepeat()
	p.AccelerateAfter = 0
	p.AcceleratedInterval = 0
	assert.NoError(t, p.Validate())
}

func TestRepeaterTiming(t *testing.T) {
	clock := dyntest.NewFakeClock()
	fires := 0
	r := NewRepeater(func() { fires++ }, DefaultAutoRepeat(), clock.AfterFunc, nil)

	r.Press()
	assert.Equal(t, 1, fires, "press fires immediately")
	clock.Advance(499 * time.Millisecond)
	assert.Equal(t, 1, fires)
	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, fires)

	// Nine more at 150ms reach the acceleration threshold.
	clock.Advance(9 * 150 * time.Millisecond)
	assert.Equal(t, 11, fires)
	assert.Equal(t, 10, r.Repeats())

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, 14, fires, "accelerated repeats every 50ms")

	r.Release()
	assert.False(t, r.Pressed())
	clock.Advance(time.Second)
	assert.Equal(t, 14, fires)
	assert.Equal(t, 0, clock.Pending())
}

func TestRepeaterDropsStaleFires(t *testing.T) {
	clock := dyntest.NewFakeClock()
	var queue []func()
	fires := 0
	r := NewRepeater(func() { fires++ }, DefaultAutoRepeat(), clock.AfterFunc, func(fn func()) {
		queue = append(queue, fn)
	})

	r.Press()
	clock.Advance(500 * time.Millisecond)
	require.Len(t, queue, 1)
	r.Release()

	queue[0]()
	assert.Equal(t, 1, fires, "fire queued before release is dropped")
}

func TestRepeaterPressTwice(t *testing.T) {
	clock := dyntest.NewFakeClock()
	fires := 0
	r := NewRepeater(func() { fires++ }, DefaultAutoRepeat(), clock.AfterFunc, nil)
	r.Press()
	r.Press()
	assert.Equal(t, 1, fires)
	assert.Equal(t, 1, clock.Pending())
	r.Release()
	r.Release()
}

func TestNewRepeaterRejectsInvalidPolicy(t *testing.T) {
	assert.Panics(t, func() { NewRepeater(func() {}, AutoRepeat{}, nil, nil) })
}

func TestControlButtonsFollowAffordances(t *testing.T) {
	clock := dyntest.NewFakeClock()
	s := newBounded(t, 0, 3, 1, 0)
	c := NewControl(s, DefaultAutoRepeat(), clock.AfterFunc, nil)
	defer c.Dispose()

	assert.False(t, c.Minus.Enabled())
	assert.True(t, c.Plus.Enabled())
	assert.Equal(t, -1, c.Minus.Direction())

	c.Minus.Press()
	assert.False(t, c.Minus.Pressed(), "disabled button ignores presses")
	assert.Equal(t, 0.0, s.Value())

	c.Plus.Press()
	assert.Equal(t, 1.0, s.Value())
	assert.True(t, c.Minus.Enabled())

	clock.Advance(500*time.Millisecond + 150*time.Millisecond)
	assert.Equal(t, 3.0, s.Value())
	assert.False(t, c.Plus.Enabled())
	assert.False(t, c.Plus.Pressed(), "reaching the maximum releases the button")
	assert.Equal(t, 0, clock.Pending())
}

func TestControlDispose(t *testing.T) {
	clock := dyntest.NewFakeClock()
	s := newBounded(t, 0, 10, 1, 5)
	c := NewControl(s, DefaultAutoRepeat(), clock.AfterFunc, nil)

	c.Plus.Press()
	c.Dispose()
	clock.Advance(time.Second)
	assert.Equal(t, 6.0, s.Value())

	s.SetValue(10)
	assert.True(t, c.Plus.Enabled(), "disposed control no longer follows the stepper")
}
