package calendar

import "time"

// DaysInMonth returns the number of days in month of year in the proleptic
// Gregorian calendar.
func DaysInMonth(month time.Month, year int) int {
	switch month {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsValidValue reports whether substituting value for component c in current
// yields a valid date. For year and month edits only the day can become
// invalid (e.g. moving Jan 31 to February).
func IsValidValue(value int, c Component, current Date) bool {
	switch c {
	case Year:
		if value < MinYear || value > MaxYear {
			return false
		}
		return current.Day <= DaysInMonth(current.Month, value)
	case Month:
		if value < int(time.January) || value > int(time.December) {
			return false
		}
		return current.Day <= DaysInMonth(time.Month(value), current.Year)
	case Day:
		return value >= 1 && value <= DaysInMonth(current.Month, current.Year)
	case Hour:
		return value >= 0 && value < 24
	case Minute:
		return value >= 0 && value < 60
	}
	return false
}

// DateByUpdatingComponent substitutes value for component c without any
// validation. The result may be an impossible date such as February 30.
func DateByUpdatingComponent(d Date, c Component, value int) Date {
	return d.With(c, value)
}

// ValidDateByUpdatingComponent substitutes value for component c and, when
// the result is not a valid date, clamps the day to the last day of the
// resulting month. It never rolls over into the following month.
func ValidDateByUpdatingComponent(d Date, c Component, value int) Date {
	updated := d.With(c, value)
	if IsValidValue(value, c, d) {
		return updated
	}
	switch c {
	case Year, Month, Day:
		last := DaysInMonth(updated.Month, updated.Year)
		if updated.Day > last {
			updated.Day = last
		}
		if updated.Day < 1 {
			updated.Day = 1
		}
	}
	return updated
}
