package calendar

import "time"

// Calendar is the host calendar: the Gregorian calendar evaluated in a
// specific location. It is passed explicitly to every control instead of
// reading the process-wide local zone.
type Calendar struct {
	// Location used for wall-clock conversions. Nil means UTC.
	Location *time.Location
}

// New returns a calendar evaluated in loc.
func New(loc *time.Location) Calendar {
	return Calendar{Location: loc}
}

// UTC returns a calendar evaluated in UTC.
func UTC() Calendar {
	return Calendar{Location: time.UTC}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Time converts d to an instant in the calendar's location. Out-of-domain
// fields are normalized the way time.Date normalizes them.
func (c Calendar) Time(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, 0, 0, c.location())
}

// DateOf returns the wall-clock fields of t in the calendar's location.
func (c Calendar) DateOf(t time.Time) Date {
	return FromTime(t.In(c.location()))
}

// AddDays moves d by n calendar days, keeping the wall-clock time. It
// reports false when the result leaves the representable years.
func (c Calendar) AddDays(d Date, n int) (Date, bool) {
	if !yearInRange(d.Year) {
		return FarFuture, false
	}
	// Days are counted on the civil calendar so that zone transitions never
	// shift the time of day.
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	out := FromTime(t)
	out.Hour, out.Minute = d.Hour, d.Minute
	if !yearInRange(out.Year) {
		return FarFuture, false
	}
	return out, true
}

// AddHoursMinutes adds elapsed time to d. On a day where the clocks change,
// two hours after midnight is not necessarily 02:00.
func (c Calendar) AddHoursMinutes(d Date, hours, minutes int) (Date, bool) {
	if !yearInRange(d.Year) {
		return FarFuture, false
	}
	t := c.Time(d).Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
	out := FromTime(t)
	if !yearInRange(out.Year) {
		return FarFuture, false
	}
	return out, true
}

// DaysBetween returns the number of calendar days from a to b, ignoring
// the time of day. It is negative when b precedes a.
func (c Calendar) DaysBetween(a, b Date) int {
	return civilDay(b) - civilDay(a)
}

// civilDay returns the day number of d counted from 1970-01-01. time.Duration
// cannot span more than ~292 years, so the difference is computed on day
// numbers instead of instants.
func civilDay(d Date) int {
	y := d.Year
	m := int(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func yearInRange(y int) bool {
	return y >= MinYear && y <= MaxYear
}
