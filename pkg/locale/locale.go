// Package locale supplies the locale-dependent data the picker controls need:
// the order of the year/month/day columns, whether hours are shown with an
// AM/PM indicator, and month, weekday and meridiem names.
//
// Locales are plain values that are passed to the controls explicitly. The
// bundled locales are built from CLDR data shipped with
// github.com/go-playground/locales and matched with golang.org/x/text/language.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/errors"
	"golang.org/x/text/language"
)

// Locale describes date formatting conventions for one language/region.
type Locale struct {
	// Tag identifies the locale.
	Tag language.Tag

	// LongDatePattern is the CLDR long date pattern, e.g. "MMMM d, y".
	LongDatePattern string

	// HourPattern is the CLDR short time pattern, e.g. "h:mm a" or "HH:mm".
	HourPattern string

	MonthNames        [12]string
	ShortMonthNames   [12]string
	ShortWeekdayNames [7]string

	// AM and PM are the meridiem symbols. They are only meaningful when
	// HourPattern contains the "a" field.
	AM string
	PM string
}

// String returns the BCP 47 identifier of the locale.
func (l Locale) String() string {
	return l.Tag.String()
}

// Ordering returns the display order of the year, month and day columns.
// When the long date pattern is malformed it reports a locale error and
// returns DefaultOrdering.
func (l Locale) Ordering() [3]calendar.Component {
	ordering, ok := OrderingFromPattern(l.LongDatePattern)
	if !ok {
		errors.ReportLocale("locale.Ordering",
			fmt.Errorf("locale %s: long date pattern %q does not name year, month and day once each", l, l.LongDatePattern))
	}
	return ordering
}

// HasMeridiem reports whether the locale shows hours on a 12-hour clock with
// an AM/PM indicator.
func (l Locale) HasMeridiem() bool {
	return hasField(l.HourPattern, 'a')
}

// MonthName returns the wide name of month, or its number when the locale has
// no name for it.
func (l Locale) MonthName(month time.Month) string {
	if month < time.January || month > time.December || l.MonthNames[month-1] == "" {
		return strconv.Itoa(int(month))
	}
	return l.MonthNames[month-1]
}

// MonthShortName returns the abbreviated name of month.
func (l Locale) MonthShortName(month time.Month) string {
	if month < time.January || month > time.December || l.ShortMonthNames[month-1] == "" {
		return l.MonthName(month)
	}
	return l.ShortMonthNames[month-1]
}

// WeekdayShortName returns the abbreviated name of the weekday.
func (l Locale) WeekdayShortName(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday || l.ShortWeekdayNames[day] == "" {
		return day.String()[:3]
	}
	return l.ShortWeekdayNames[day]
}

// MeridiemSymbol returns the AM or PM symbol.
func (l Locale) MeridiemSymbol(pm bool) string {
	if pm {
		if l.PM != "" {
			return l.PM
		}
		return "PM"
	}
	if l.AM != "" {
		return l.AM
	}
	return "AM"
}

// FormatDayOffsetTitle formats d as weekday, abbreviated month and day
// ("Tue Nov 22"), the title of a day row in date-and-time mode.
func (l Locale) FormatDayOffsetTitle(d calendar.Date) string {
	weekday := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
	return strings.Join([]string{
		l.WeekdayShortName(weekday),
		l.MonthShortName(d.Month),
		strconv.Itoa(d.Day),
	}, " ")
}
