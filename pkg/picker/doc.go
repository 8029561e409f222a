// Package picker implements the state machines behind a wheel date picker.
//
// The picker has two modes. In [ModeDate] it shows year, month and day
// columns in the order the locale writes dates; in [ModeDateAndTime] it
// shows a day column counted from today, hour and minute columns and, for
// 12-hour locales, an AM/PM column.
//
// # Rendering
//
// The cores never draw anything. A [Renderer] is told which row each column
// should show and when to reload; it queries titles, row counts and enabled
// state through the [Core] methods and reports user scrolling back through
// SelectRow:
//
//	p := picker.New(picker.WithRenderer(r), picker.WithLocale(loc))
//	p.AddListener(func(d calendar.Date) {
//	    fmt.Println("picked", d)
//	})
//
// # Consistency
//
// A single column change can produce an impossible date (January 31 moved to
// February) or one outside the configured range. Impossible days are clamped
// to the last day of the month; out-of-range dates snap to the nearest
// violated bound. In both cases the affected columns are moved to match and
// listeners receive the corrected date. Programmatic SetDate calls are
// clamped the same way but never notify listeners.
//
// Cores are single-threaded. Call them from the goroutine that owns the
// renderer.
package picker
