package picker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-drift/dyntype/internal/listener"
	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/errors"
	"github.com/go-drift/dyntype/pkg/locale"
	"github.com/go-drift/dyntype/pkg/wheel"
)

// DatePicker is the date-mode picker core. It shows year, month and day
// columns in locale order and keeps the selected date valid and inside its
// range whenever a single column changes.
//
// DatePicker is not safe for concurrent use.
type DatePicker struct {
	loc      locale.Locale
	ordering [3]calendar.Component
	rng      calendar.Range
	date     calendar.Date
	rows     [numColumns]int

	renderer  Renderer
	listeners listener.Set[calendar.Date]
}

// NewDatePicker returns a date picker showing 2001-01-01 within the default
// range. A nil renderer is allowed.
func NewDatePicker(loc locale.Locale, r Renderer) *DatePicker {
	if r == nil {
		r = nopRenderer{}
	}
	p := &DatePicker{
		loc:      loc,
		ordering: loc.Ordering(),
		rng:      calendar.DefaultRange(),
		renderer: r,
	}
	p.SetDate(calendar.NewDate(2001, time.January, 1), false)
	return p
}

// Date returns the committed date.
func (p *DatePicker) Date() calendar.Date {
	return p.date
}

// Range returns the selectable range.
func (p *DatePicker) Range() calendar.Range {
	return p.rng
}

// Locale returns the locale that decides column order and month names.
func (p *DatePicker) Locale() locale.Locale {
	return p.loc
}

// SetRenderer replaces the renderer. A nil renderer is allowed.
func (p *DatePicker) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	p.renderer = r
}

// AddListener registers fn to be called with every committed user edit.
// Programmatic changes through SetDate are not reported. The returned
// function unregisters fn.
func (p *DatePicker) AddListener(fn func(calendar.Date)) func() {
	return p.listeners.Add(fn)
}

// SetDate shows d without notifying listeners. Impossible dates such as
// February 30 are normalized first. A date whose day falls outside the range
// moves to the day of the nearest bound and keeps its time of day.
func (p *DatePicker) SetDate(d calendar.Date, animated bool) {
	p.date = p.rng.ClampDay(calendar.Normalize(d))
	for i, c := range p.ordering {
		p.rows[dateColumn(c)] = dateSpans[c].CenterRow(p.date.Get(c))
		p.renderer.SelectRow(i, p.rows[dateColumn(c)], animated)
	}
}

// SetRange replaces the selectable range. It panics with an
// *errors.ConfigError unless r.Min precedes r.Max. A date that falls outside
// the new range is clamped without notifying listeners. Bounds are compared
// by calendar day.
func (p *DatePicker) SetRange(r calendar.Range) {
	p.rng = calendar.NewRange(r.Min, r.Max)
	if !p.rng.ContainsDay(p.date) {
		p.SetDate(p.date, false)
	}
}

// SetMinimumDate replaces the lower bound of the range.
func (p *DatePicker) SetMinimumDate(d calendar.Date) {
	p.SetRange(calendar.Range{Min: d, Max: p.rng.Max})
}

// SetMaximumDate replaces the upper bound of the range.
func (p *DatePicker) SetMaximumDate(d calendar.Date) {
	p.SetRange(calendar.Range{Min: p.rng.Min, Max: d})
}

// SetLocale reorders the columns for loc and reloads the renderer. Each
// column keeps its selected row.
func (p *DatePicker) SetLocale(loc locale.Locale) {
	p.loc = loc
	p.ordering = loc.Ordering()
	p.renderer.ReloadAllColumns()
	for i, c := range p.ordering {
		p.renderer.SelectRow(i, p.rows[dateColumn(c)], false)
	}
}

// ColumnCount returns 3.
func (p *DatePicker) ColumnCount() int {
	return len(p.ordering)
}

// RowCount returns the number of rows of every column.
func (p *DatePicker) RowCount(column int) int {
	p.component(column)
	return wheel.Rows
}

// ColumnKind returns what column displays.
func (p *DatePicker) ColumnKind(column int) Column {
	return dateColumn(p.component(column))
}

// SelectedRow returns the row column currently shows as selected.
func (p *DatePicker) SelectedRow(column int) int {
	return p.rows[p.ColumnKind(column)]
}

// Title returns the label of row: the month name for the month column and
// the decimal value otherwise.
func (p *DatePicker) Title(column, row int) string {
	c := p.component(column)
	value := dateSpans[c].Value(row)
	if c == calendar.Month {
		return p.loc.MonthName(time.Month(value))
	}
	return strconv.Itoa(value)
}

// WidthSamples returns the widest titles column can show.
func (p *DatePicker) WidthSamples(column int) []string {
	switch p.component(column) {
	case calendar.Month:
		samples := make([]string, 0, 12)
		for m := time.January; m <= time.December; m++ {
			samples = append(samples, p.loc.MonthName(m))
		}
		return samples
	case calendar.Day:
		return []string{"99"}
	default:
		return []string{"9999"}
	}
}

// IsRowEnabled reports whether selecting row alone would produce a valid
// date inside the range. Disabled rows are only dimmed; they can still be
// selected.
func (p *DatePicker) IsRowEnabled(column, row int) bool {
	c := p.component(column)
	naive := calendar.DateByUpdatingComponent(p.date, c, dateSpans[c].Value(row))
	return naive.IsValid() && p.rng.ContainsDay(naive)
}

// SelectRow applies a user selection of row in column. The resulting date is
// corrected so it exists and lies inside the range, the other columns are
// moved to match, and listeners are notified.
func (p *DatePicker) SelectRow(column, row int) {
	c := p.component(column)
	value := dateSpans[c].Value(row)
	p.rows[dateColumn(c)] = row

	naive := calendar.DateByUpdatingComponent(p.date, c, value)
	validated := calendar.ValidDateByUpdatingComponent(p.date, c, value)

	if clamped := p.rng.ClampDay(validated); clamped != validated {
		validated = p.snap(validated, clamped)
	} else {
		for i, other := range p.ordering {
			if naive.Get(other) == validated.Get(other) {
				continue
			}
			animated := other != c
			if other == calendar.Day {
				// Judged against the date shown before this edit.
				animated = calendar.IsValidValue(validated.Day, calendar.Day, p.date)
			}
			p.reselect(i, other, validated, animated)
		}
	}

	p.date = validated
	p.listeners.Notify("picker.DatePicker.notify", validated)
}

// snap moves every column to bound after an edit left the days of the range.
func (p *DatePicker) snap(edited, bound calendar.Date) calendar.Date {
	errors.ReportSnap("picker.DatePicker.SelectRow", edited, bound)
	for i, c := range p.ordering {
		p.reselect(i, c, bound, true)
	}
	return bound
}

func (p *DatePicker) reselect(column int, c calendar.Component, d calendar.Date, animated bool) {
	kind := dateColumn(c)
	p.rows[kind] = dateSpans[c].RowNear(p.rows[kind], d.Get(c))
	p.renderer.SelectRow(column, p.rows[kind], animated)
}

func (p *DatePicker) component(column int) calendar.Component {
	if column < 0 || column >= len(p.ordering) {
		panic(fmt.Sprintf("picker: column %d out of range [0, %d)", column, len(p.ordering)))
	}
	return p.ordering[column]
}
