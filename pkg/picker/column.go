package picker

import (
	"fmt"
	"time"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/wheel"
)

// Column identifies what a picker column displays.
type Column int

const (
	ColumnYear Column = iota
	ColumnMonth
	ColumnDay
	ColumnDayOffset
	ColumnHour
	ColumnMinute
	ColumnMeridiem

	numColumns
)

var columnNames = [numColumns]string{
	ColumnYear:      "year",
	ColumnMonth:     "month",
	ColumnDay:       "day",
	ColumnDayOffset: "dayOffset",
	ColumnHour:      "hour",
	ColumnMinute:    "minute",
	ColumnMeridiem:  "meridiem",
}

func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// dateColumn maps a date-mode component to its column kind.
func dateColumn(c calendar.Component) Column {
	switch c {
	case calendar.Year:
		return ColumnYear
	case calendar.Month:
		return ColumnMonth
	case calendar.Day:
		return ColumnDay
	}
	panic(fmt.Sprintf("picker: %s is not a date column", c))
}

// dateSpans are the wheel cycles of the date-mode components.
var dateSpans = map[calendar.Component]wheel.Span{
	calendar.Year:  {Start: calendar.MinYear, Length: calendar.MaxYear - calendar.MinYear + 1},
	calendar.Month: {Start: 1, Length: 12},
	calendar.Day:   {Start: 1, Length: 31},
}

var (
	hourSpan   = wheel.Span{Start: 0, Length: 24}
	minuteSpan = wheel.Span{Start: 0, Length: 60}
)

// Mode selects which columns the picker shows.
type Mode int

const (
	// ModeDate shows year, month and day columns in locale order.
	ModeDate Mode = iota
	// ModeDateAndTime shows day offset, hour, minute and, for 12-hour
	// locales, AM/PM columns.
	ModeDateAndTime
)

func (m Mode) String() string {
	switch m {
	case ModeDate:
		return "date"
	case ModeDateAndTime:
		return "dateAndTime"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "date":
		return ModeDate, nil
	case "dateAndTime":
		return ModeDateAndTime, nil
	}
	return 0, fmt.Errorf("picker: unknown mode %q (want date or dateAndTime)", s)
}

// Renderer draws the picker. The core tells it which rows to show as
// selected; the renderer reads everything else through the query methods.
type Renderer interface {
	// SelectRow scrolls column to row.
	SelectRow(column, row int, animated bool)
	// ReloadAllColumns discards cached column layout, titles and widths.
	ReloadAllColumns()
}

type nopRenderer struct{}

func (nopRenderer) SelectRow(int, int, bool) {}
func (nopRenderer) ReloadAllColumns()        {}

// Clock provides the current time. The date-and-time picker reads it once to
// anchor the day offsets.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
