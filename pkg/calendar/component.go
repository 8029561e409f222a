package calendar

import (
	"fmt"
	"time"
)

// Component identifies one field of a [Date].
type Component int

const (
	Year Component = iota
	Month
	Day
	Hour
	Minute
)

// componentOps is the dispatch table behind Get and With, indexed by
// Component.
var componentOps = [...]struct {
	name   string
	symbol rune
	get    func(Date) int
	set    func(*Date, int)
}{
	Year:   {"year", 'y', func(d Date) int { return d.Year }, func(d *Date, v int) { d.Year = v }},
	Month:  {"month", 'M', func(d Date) int { return int(d.Month) }, func(d *Date, v int) { d.Month = time.Month(v) }},
	Day:    {"day", 'd', func(d Date) int { return d.Day }, func(d *Date, v int) { d.Day = v }},
	Hour:   {"hour", 'H', func(d Date) int { return d.Hour }, func(d *Date, v int) { d.Hour = v }},
	Minute: {"minute", 'm', func(d Date) int { return d.Minute }, func(d *Date, v int) { d.Minute = v }},
}

func (c Component) valid() bool {
	return c >= Year && c <= Minute
}

// String returns the lower-case component name.
func (c Component) String() string {
	if !c.valid() {
		return fmt.Sprintf("Component(%d)", int(c))
	}
	return componentOps[c].name
}

// Symbol returns the CLDR pattern letter of the component.
func (c Component) Symbol() rune {
	if !c.valid() {
		return '!'
	}
	return componentOps[c].symbol
}

// ComponentForSymbol maps a CLDR pattern letter to its date component.
// Only the year, month and day letters are recognized.
func ComponentForSymbol(r rune) (Component, bool) {
	switch r {
	case 'y':
		return Year, true
	case 'M', 'L':
		return Month, true
	case 'd':
		return Day, true
	}
	return 0, false
}

// Get returns the value of component c in d.
func (d Date) Get(c Component) int {
	if !c.valid() {
		panic(fmt.Sprintf("calendar: unknown component %d", int(c)))
	}
	return componentOps[c].get(d)
}

// With returns d with component c replaced by v. No validation is done.
func (d Date) With(c Component, v int) Date {
	if !c.valid() {
		panic(fmt.Sprintf("calendar: unknown component %d", int(c)))
	}
	componentOps[c].set(&d, v)
	return d
}
