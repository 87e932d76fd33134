package engine

import "time"

// =============================================================================
// DATE RANGE - Inclusive span of civil dates
// =============================================================================

// DateRange is an inclusive [Start, End] span.
//
// Examples:
//   - A week:  Monday through Sunday
//   - A month: the 1st through the last day
//   - A leave: first day off through last day off
type DateRange struct {
	Start Date
	End   Date
}

// Valid reports whether End is on or after Start.
func (r DateRange) Valid() bool { return r.End.AfterOrEqual(r.Start) }

// Contains returns true if the date is within [Start, End].
func (r DateRange) Contains(d Date) bool {
	return d.AfterOrEqual(r.Start) && d.BeforeOrEqual(r.End)
}

// Days returns every date in the range, in order. Empty for inverted ranges.
func (r DateRange) Days() []Date {
	var days []Date
	for d := r.Start; d.BeforeOrEqual(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Len returns the number of calendar days in the range (0 if inverted).
func (r DateRange) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.Start.DaysUntil(r.End) + 1
}

func (r DateRange) String() string {
	return "[" + r.Start.String() + ", " + r.End.String() + "]"
}

// =============================================================================
// STANDARD WINDOWS - Week and month views are windows over the same grid
// =============================================================================

// WeekRange returns the 7-day range starting at start.
func WeekRange(start Date) DateRange {
	return DateRange{Start: start, End: start.AddDays(6)}
}

// WeekRangeContaining returns the Monday-to-Sunday week holding the date.
func WeekRangeContaining(d Date) DateRange {
	// time.Weekday puts Sunday at 0; shift so Monday is the anchor.
	offset := (int(d.Weekday()) + 6) % 7
	return WeekRange(d.AddDays(-offset))
}

// MonthRange returns the full calendar month as a range.
func MonthRange(year int, month time.Month) DateRange {
	start := NewDate(year, month, 1)
	return DateRange{Start: start, End: start.AddMonths(1).AddDays(-1)}
}

// YearRange returns January 1 through December 31.
func YearRange(year int) DateRange {
	return DateRange{
		Start: NewDate(year, time.January, 1),
		End:   NewDate(year, time.December, 31),
	}
}

// =============================================================================
// ISO WEEK - Bucket key for month-view rollups
// =============================================================================

// ISOWeek identifies an ISO 8601 week. Used as the bucket key when a
// month view rolls days up into week summaries.
type ISOWeek struct {
	Year int
	Week int
}

func (w ISOWeek) Before(other ISOWeek) bool {
	if w.Year != other.Year {
		return w.Year < other.Year
	}
	return w.Week < other.Week
}
