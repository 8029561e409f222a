package calendar

import "github.com/go-drift/dyntype/pkg/errors"

// Range is an inclusive span of dates. Min always strictly precedes Max.
type Range struct {
	Min Date
	Max Date
}

// DefaultRange spans DistantPast to FarFuture.
func DefaultRange() Range {
	return Range{Min: DistantPast, Max: FarFuture}
}

// NewRange returns the range [min, max]. It panics with a
// *errors.ConfigError unless min strictly precedes max.
func NewRange(min, max Date) Range {
	if !min.Before(max) {
		errors.Configf("calendar.NewRange", "minimum date %s must precede maximum date %s", min, max)
	}
	return Range{Min: min, Max: max}
}

// Contains reports whether d lies within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Min) && !d.After(r.Max)
}

// Clamp returns the bound nearest to d when d is outside the range, and d
// itself otherwise.
func (r Range) Clamp(d Date) Date {
	if d.Before(r.Min) {
		return r.Min
	}
	if d.After(r.Max) {
		return r.Max
	}
	return d
}

// ContainsDay reports whether the calendar day of d lies within the days of
// the range. Times of day are ignored on both sides.
func (r Range) ContainsDay(d Date) bool {
	day := StartOfDay(d)
	return !day.Before(StartOfDay(r.Min)) && !day.After(StartOfDay(r.Max))
}

// ClampDay moves d onto the day of the nearest bound when its day is outside
// the range. The hour and minute of d are kept.
func (r Range) ClampDay(d Date) Date {
	day := StartOfDay(d)
	switch {
	case day.Before(StartOfDay(r.Min)):
		return withTimeOf(r.Min, d)
	case day.After(StartOfDay(r.Max)):
		return withTimeOf(r.Max, d)
	}
	return d
}

func withTimeOf(day, clock Date) Date {
	day.Hour = clock.Hour
	day.Minute = clock.Minute
	return day
}
