package picker

import (
	"fmt"
	"strconv"

	"github.com/go-drift/dyntype/internal/listener"
	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/errors"
	"github.com/go-drift/dyntype/pkg/locale"
	"github.com/go-drift/dyntype/pkg/wheel"
)

// DefaultTodayLabel titles the day-offset row of the base date.
const DefaultTodayLabel = "Today"

var (
	hourStart   = wheel.Center - wheel.Center%hourSpan.Length
	minuteStart = wheel.Center - wheel.Center%minuteSpan.Length
)

// DateTimePicker is the date-and-time picker core. Its first column counts
// days relative to a base date captured at construction, followed by hour,
// minute and, for 12-hour locales, AM/PM columns.
//
// The hour column always cycles over 24 values so that scrolling through
// 11 → 12 changes the meridiem; 12-hour titles are derived from the row.
//
// DateTimePicker does not enforce a date range. It is not safe for
// concurrent use.
type DateTimePicker struct {
	cal        calendar.Calendar
	loc        locale.Locale
	base       calendar.Date
	date       calendar.Date
	columns    []Column
	rows       [numColumns]int
	todayLabel string

	renderer  Renderer
	listeners listener.Set[calendar.Date]
}

// NewDateTimePicker returns a picker anchored at the current day of clock in
// cal, showing that instant. A nil clock uses the system time and a nil
// renderer is allowed.
func NewDateTimePicker(cal calendar.Calendar, loc locale.Locale, clock Clock, r Renderer) *DateTimePicker {
	if clock == nil {
		clock = systemClock{}
	}
	if r == nil {
		r = nopRenderer{}
	}
	now := cal.DateOf(clock.Now())
	p := &DateTimePicker{
		cal:        cal,
		loc:        loc,
		base:       now,
		todayLabel: DefaultTodayLabel,
		renderer:   r,
	}
	p.columns = timeColumns(loc)
	p.SetDate(now, false)
	return p
}

func timeColumns(loc locale.Locale) []Column {
	if loc.HasMeridiem() {
		return []Column{ColumnDayOffset, ColumnHour, ColumnMinute, ColumnMeridiem}
	}
	return []Column{ColumnDayOffset, ColumnHour, ColumnMinute}
}

// Base returns the date the day offsets are counted from.
func (p *DateTimePicker) Base() calendar.Date {
	return p.base
}

// Date returns the committed date. It is calendar.FarFuture after an edit
// that could not be represented.
func (p *DateTimePicker) Date() calendar.Date {
	return p.date
}

// Locale returns the locale that decides titles and the meridiem column.
func (p *DateTimePicker) Locale() locale.Locale {
	return p.loc
}

// SetTodayLabel changes the title of the base day.
func (p *DateTimePicker) SetTodayLabel(label string) {
	p.todayLabel = label
	p.renderer.ReloadAllColumns()
	p.selectAll(false)
}

// SetRenderer replaces the renderer. A nil renderer is allowed.
func (p *DateTimePicker) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	p.renderer = r
}

// AddListener registers fn to be called with every committed user edit.
// The returned function unregisters fn.
func (p *DateTimePicker) AddListener(fn func(calendar.Date)) func() {
	return p.listeners.Add(fn)
}

// SetDate shows d without notifying listeners. Days further from the base
// than the wheel can scroll are pinned to its first or last row.
func (p *DateTimePicker) SetDate(d calendar.Date, animated bool) {
	d = calendar.Normalize(d)
	p.date = d
	p.rows[ColumnDayOffset] = wheel.Clamp(wheel.Center + p.cal.DaysBetween(p.base, d))
	p.rows[ColumnHour] = hourStart + d.Hour
	p.rows[ColumnMinute] = minuteStart + d.Minute
	p.rows[ColumnMeridiem] = meridiemRow(d.Hour)
	p.selectAll(animated)
}

// SetLocale updates titles and adds or removes the meridiem column.
func (p *DateTimePicker) SetLocale(loc locale.Locale) {
	p.loc = loc
	p.columns = timeColumns(loc)
	p.rows[ColumnMeridiem] = meridiemRow(hourSpan.Value(p.rows[ColumnHour]))
	p.renderer.ReloadAllColumns()
	p.selectAll(false)
}

func (p *DateTimePicker) selectAll(animated bool) {
	for i, kind := range p.columns {
		p.renderer.SelectRow(i, p.rows[kind], animated)
	}
}

// ColumnCount returns 4 for 12-hour locales and 3 otherwise.
func (p *DateTimePicker) ColumnCount() int {
	return len(p.columns)
}

// ColumnKind returns what column displays.
func (p *DateTimePicker) ColumnKind(column int) Column {
	if column < 0 || column >= len(p.columns) {
		panic(fmt.Sprintf("picker: column %d out of range [0, %d)", column, len(p.columns)))
	}
	return p.columns[column]
}

// RowCount returns 2 for the meridiem column and wheel.Rows otherwise.
func (p *DateTimePicker) RowCount(column int) int {
	if p.ColumnKind(column) == ColumnMeridiem {
		return 2
	}
	return wheel.Rows
}

// SelectedRow returns the row column currently shows as selected.
func (p *DateTimePicker) SelectedRow(column int) int {
	return p.rows[p.ColumnKind(column)]
}

// IsRowEnabled always reports true.
func (p *DateTimePicker) IsRowEnabled(column, row int) bool {
	p.ColumnKind(column)
	return true
}

// Title returns the label of row.
func (p *DateTimePicker) Title(column, row int) string {
	switch p.ColumnKind(column) {
	case ColumnDayOffset:
		offset := row - wheel.Center
		if offset == 0 {
			return p.todayLabel
		}
		d, ok := p.cal.AddDays(calendar.StartOfDay(p.base), offset)
		if !ok {
			return ""
		}
		return p.loc.FormatDayOffsetTitle(d)
	case ColumnHour:
		hour := hourSpan.Value(row)
		if !p.loc.HasMeridiem() {
			return strconv.Itoa(hour)
		}
		if hour%12 == 0 {
			return "12"
		}
		return strconv.Itoa(hour % 12)
	case ColumnMinute:
		return fmt.Sprintf("%02d", minuteSpan.Value(row))
	default:
		return p.loc.MeridiemSymbol(row == 1)
	}
}

// WidthSamples returns the widest titles column can show.
func (p *DateTimePicker) WidthSamples(column int) []string {
	switch p.ColumnKind(column) {
	case ColumnDayOffset:
		return []string{p.todayLabel, "WWW WWW 99"}
	case ColumnMeridiem:
		return []string{p.loc.MeridiemSymbol(false), p.loc.MeridiemSymbol(true)}
	default:
		return []string{"99"}
	}
}

// SelectRow applies a user selection of row in column. The hour and meridiem
// columns are kept consistent, the date is recomputed from the base date and
// listeners are notified. When the result cannot be represented the date
// becomes calendar.FarFuture and listeners are not notified.
func (p *DateTimePicker) SelectRow(column, row int) {
	kind := p.ColumnKind(column)
	switch kind {
	case ColumnMeridiem:
		row = wheel.Span{Length: 2}.Value(row)
		p.rows[ColumnMeridiem] = row
		p.syncHourToMeridiem()
	case ColumnHour:
		p.rows[ColumnHour] = row
		p.syncMeridiemToHour()
	default:
		p.rows[kind] = row
	}

	offset := p.rows[ColumnDayOffset] - wheel.Center
	hour := hourSpan.Value(p.rows[ColumnHour])
	minute := minuteSpan.Value(p.rows[ColumnMinute])

	day, ok := p.cal.AddDays(calendar.StartOfDay(p.base), offset)
	var d calendar.Date
	if ok {
		d, ok = p.cal.AddHoursMinutes(day, hour, minute)
	}
	if !ok {
		p.date = calendar.FarFuture
		errors.ReportUnrepresentable("picker.DateTimePicker.SelectRow", "%d days from %s at %02d:%02d", offset, p.base, hour, minute)
		return
	}

	p.date = d
	p.listeners.Notify("picker.DateTimePicker.notify", d)
}

// syncHourToMeridiem moves the hour by half a day when the selected meridiem
// contradicts it.
func (p *DateTimePicker) syncHourToMeridiem() {
	pm := p.rows[ColumnMeridiem] == 1
	row := p.rows[ColumnHour]
	if (hourSpan.Value(row) >= 12) == pm {
		return
	}
	shift := 12
	if !pm {
		shift = -12
	}
	if row+shift < 0 || row+shift >= wheel.Rows {
		shift = -shift
	}
	p.rows[ColumnHour] = row + shift
	if i := p.columnIndex(ColumnHour); i >= 0 {
		p.renderer.SelectRow(i, p.rows[ColumnHour], true)
	}
}

// syncMeridiemToHour selects the meridiem implied by the hour.
func (p *DateTimePicker) syncMeridiemToHour() {
	want := meridiemRow(hourSpan.Value(p.rows[ColumnHour]))
	if p.rows[ColumnMeridiem] == want {
		return
	}
	p.rows[ColumnMeridiem] = want
	if i := p.columnIndex(ColumnMeridiem); i >= 0 {
		p.renderer.SelectRow(i, want, true)
	}
}

func (p *DateTimePicker) columnIndex(kind Column) int {
	for i, c := range p.columns {
		if c == kind {
			return i
		}
	}
	return -1
}

func meridiemRow(hour int) int {
	if hour >= 12 {
		return 1
	}
	return 0
}
