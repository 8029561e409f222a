package picker

import (
	"github.com/go-drift/dyntype/internal/listener"
	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/locale"
)

// Core is the query and event surface a renderer drives. Both the date and
// the date-and-time cores implement it, as does Picker.
type Core interface {
	ColumnCount() int
	RowCount(column int) int
	ColumnKind(column int) Column
	Title(column, row int) string
	IsRowEnabled(column, row int) bool
	SelectedRow(column int) int
	WidthSamples(column int) []string
	SelectRow(column, row int)
}

var (
	_ Core = (*DatePicker)(nil)
	_ Core = (*DateTimePicker)(nil)
	_ Core = (*Picker)(nil)
)

type options struct {
	cal        calendar.Calendar
	loc        locale.Locale
	clock      Clock
	renderer   Renderer
	mode       Mode
	todayLabel string
	rng        *calendar.Range
}

// Option configures a Picker.
type Option func(*options)

// WithCalendar sets the calendar used for day and elapsed-time arithmetic.
// The default is UTC.
func WithCalendar(cal calendar.Calendar) Option {
	return func(o *options) { o.cal = cal }
}

// WithLocale sets the locale. The default is locale.Default().
func WithLocale(loc locale.Locale) Option {
	return func(o *options) { o.loc = loc }
}

// WithClock sets the clock that provides the initial date and the base of
// the day offsets.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRenderer sets the renderer.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithMode sets the initial mode. The default is ModeDate.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithTodayLabel sets the title of the base day in date-and-time mode.
func WithTodayLabel(label string) Option {
	return func(o *options) { o.todayLabel = label }
}

// WithRange sets the date-mode range. It panics with an *errors.ConfigError
// unless r.Min precedes r.Max.
func WithRange(r calendar.Range) Option {
	return func(o *options) { o.rng = &r }
}

// Picker combines the date and the date-and-time cores behind one renderer.
// Only the core of the current mode talks to the renderer; switching modes
// reloads the columns and shows the current date in the new layout.
//
// Picker is not safe for concurrent use.
type Picker struct {
	mode      Mode
	renderer  Renderer
	dates     *DatePicker
	times     *DateTimePicker
	listeners listener.Set[calendar.Date]
}

// New returns a picker showing the current time of the configured clock.
func New(opts ...Option) *Picker {
	o := options{
		cal:        calendar.UTC(),
		loc:        locale.Default(),
		clock:      systemClock{},
		todayLabel: DefaultTodayLabel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Picker{mode: o.mode, renderer: o.renderer}
	if p.renderer == nil {
		p.renderer = nopRenderer{}
	}
	p.dates = NewDatePicker(o.loc, nil)
	p.times = NewDateTimePicker(o.cal, o.loc, o.clock, nil)
	p.times.todayLabel = o.todayLabel
	if o.rng != nil {
		p.dates.SetRange(*o.rng)
	}
	p.dates.SetDate(p.times.Date(), false)

	p.dates.SetRenderer(gate{p, ModeDate})
	p.times.SetRenderer(gate{p, ModeDateAndTime})
	p.dates.AddListener(p.forward)
	p.times.AddListener(p.forward)

	p.renderer.ReloadAllColumns()
	p.active().SetDate(p.Date(), false)
	return p
}

// gate forwards renderer calls of one core while its mode is active.
type gate struct {
	p    *Picker
	mode Mode
}

func (g gate) SelectRow(column, row int, animated bool) {
	if g.p.mode == g.mode {
		g.p.renderer.SelectRow(column, row, animated)
	}
}

func (g gate) ReloadAllColumns() {
	if g.p.mode == g.mode {
		g.p.renderer.ReloadAllColumns()
	}
}

type core interface {
	Core
	Date() calendar.Date
	SetDate(d calendar.Date, animated bool)
	SetLocale(loc locale.Locale)
}

func (p *Picker) active() core {
	if p.mode == ModeDateAndTime {
		return p.times
	}
	return p.dates
}

func (p *Picker) forward(d calendar.Date) {
	p.listeners.Notify("picker.Picker.notify", d)
}

// Mode returns the current mode.
func (p *Picker) Mode() Mode {
	return p.mode
}

// SetMode switches the column layout. The current date is carried over,
// clamped to the date-mode range when switching to ModeDate.
func (p *Picker) SetMode(m Mode) {
	if m == p.mode {
		return
	}
	d := p.Date()
	p.mode = m
	p.renderer.ReloadAllColumns()
	p.active().SetDate(d, false)
}

// Date returns the committed date of the current mode.
func (p *Picker) Date() calendar.Date {
	return p.active().Date()
}

// SetDate shows d in both modes without notifying listeners.
func (p *Picker) SetDate(d calendar.Date, animated bool) {
	p.dates.SetDate(d, animated)
	p.times.SetDate(d, animated)
}

// DatePicker returns the date-mode core.
func (p *Picker) DatePicker() *DatePicker {
	return p.dates
}

// DateTimePicker returns the date-and-time core.
func (p *Picker) DateTimePicker() *DateTimePicker {
	return p.times
}

// Locale returns the current locale.
func (p *Picker) Locale() locale.Locale {
	return p.dates.Locale()
}

// SetLocale changes the locale of both modes.
func (p *Picker) SetLocale(loc locale.Locale) {
	p.dates.SetLocale(loc)
	p.times.SetLocale(loc)
}

// Range returns the date-mode range.
func (p *Picker) Range() calendar.Range {
	return p.dates.Range()
}

// SetRange replaces the date-mode range.
func (p *Picker) SetRange(r calendar.Range) {
	p.dates.SetRange(r)
}

// SetMinimumDate replaces the lower bound of the date-mode range.
func (p *Picker) SetMinimumDate(d calendar.Date) {
	p.dates.SetMinimumDate(d)
}

// SetMaximumDate replaces the upper bound of the date-mode range.
func (p *Picker) SetMaximumDate(d calendar.Date) {
	p.dates.SetMaximumDate(d)
}

// SetTodayLabel changes the title of the base day in date-and-time mode.
func (p *Picker) SetTodayLabel(label string) {
	p.times.SetTodayLabel(label)
}

// SetRenderer replaces the renderer, reloads it and selects the current rows.
func (p *Picker) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	p.renderer = r
	r.ReloadAllColumns()
	for i := 0; i < p.ColumnCount(); i++ {
		r.SelectRow(i, p.SelectedRow(i), false)
	}
}

// AddListener registers fn to be called with every committed user edit in
// either mode. The returned function unregisters fn.
func (p *Picker) AddListener(fn func(calendar.Date)) func() {
	return p.listeners.Add(fn)
}

func (p *Picker) ColumnCount() int                  { return p.active().ColumnCount() }
func (p *Picker) RowCount(column int) int           { return p.active().RowCount(column) }
func (p *Picker) ColumnKind(column int) Column      { return p.active().ColumnKind(column) }
func (p *Picker) Title(column, row int) string      { return p.active().Title(column, row) }
func (p *Picker) IsRowEnabled(column, row int) bool { return p.active().IsRowEnabled(column, row) }
func (p *Picker) SelectedRow(column int) int        { return p.active().SelectedRow(column) }
func (p *Picker) WidthSamples(column int) []string  { return p.active().WidthSamples(column) }

// SelectRow applies a user selection in the current mode.
func (p *Picker) SelectRow(column, row int) {
	p.active().SelectRow(column, row)
}
