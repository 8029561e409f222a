// Package calendar provides the Gregorian date arithmetic used by the picker
// controls.
//
// A [Date] is a wall-clock value (year, month, day, hour, minute) with no
// attached zone. Arithmetic that depends on a zone, such as adding elapsed
// hours across a daylight saving transition, goes through an injected
// [Calendar] instead of the process-wide local time.
package calendar

import (
	"fmt"
	"time"
)

// Representable years. Results outside this range are reported as
// unrepresentable by the arithmetic helpers.
const (
	MinYear = 1
	MaxYear = 9999
)

var (
	// DistantPast is the earliest date a picker range can start at.
	DistantPast = Date{Year: 1, Month: time.January, Day: 1}

	// FarFuture is the default range maximum and the sentinel adopted when
	// date arithmetic cannot produce a representable value.
	FarFuture = Date{Year: 4001, Month: time.January, Day: 1}
)

// Date is a semantic wall-clock date and time.
type Date struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// NewDate returns the date at midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewDateTime returns the date at the given wall-clock time.
func NewDateTime(year int, month time.Month, day, hour, minute int) Date {
	return Date{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

// IsValid reports whether every field is inside its Gregorian domain.
func (d Date) IsValid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Month, d.Year) {
		return false
	}
	return d.Hour >= 0 && d.Hour < 24 && d.Minute >= 0 && d.Minute < 60
}

// Normalize folds out-of-domain fields into a real date the way time.Date
// does, so February 30 becomes March 2. Valid dates are returned unchanged.
func Normalize(d Date) Date {
	if d.IsValid() {
		return d
	}
	return FromTime(time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, 0, 0, time.UTC))
}

// IsFarFuture reports whether d is the unrepresentable-date sentinel.
func (d Date) IsFarFuture() bool {
	return d == FarFuture
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return Compare(d, other) > 0
}

// String formats the date as "2006-01-02 15:04".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", d.Year, int(d.Month), d.Day, d.Hour, d.Minute)
}

// Compare returns -1, 0 or +1 depending on whether a is before, equal to or
// after b. Fields are compared from most to least significant, so invalid
// dates still order consistently.
func Compare(a, b Date) int {
	pairs := [...][2]int{
		{a.Year, b.Year},
		{int(a.Month), int(b.Month)},
		{a.Day, b.Day},
		{a.Hour, b.Hour},
		{a.Minute, b.Minute},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// StartOfDay returns d at midnight.
func StartOfDay(d Date) Date {
	d.Hour = 0
	d.Minute = 0
	return d
}

// Parse reads "2006-01-02" or "2006-01-02 15:04".
func Parse(s string) (Date, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("calendar: cannot parse date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// FromTime returns the wall-clock fields of t in its own location.
func FromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day, Hour: t.Hour(), Minute: t.Minute()}
}
