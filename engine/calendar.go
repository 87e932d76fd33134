/*
calendar.go - Business-day classification and counting

PURPOSE:
  The business calendar turns raw dates into business-meaningful day
  counts. It backs leave-day computation (inclusive counting), the
  reception-to-delivery delay metric (exclusive-start counting), and
  day classification in timesheet grids.

COUNTING CONVENTIONS:
  CountInclusive:      every business day in [start, end], both ends in.
                       end before start yields 0 - callers rely on this
                       meaning "zero duration", not a fault.
  CountExclusiveStart: business days strictly after start, up to and
                       including end. end on or before start yields 0.

DAY CLASSIFICATION:
  weekend = Saturday or Sunday in the local civil calendar.
  holiday = date listed in the supplied holiday set, independent of
  weekend status. A holiday on a weekday fails the business-day test;
  a holiday on a weekend changes nothing.

No state is retained between calls; given the same inputs the same
count comes back.

SEE ALSO:
  - time.go: Date and HolidaySet
  - production/metrics.go: delay metric built on exclusive-start mode
  - leave/request.go: leave days built on inclusive mode
*/
package engine

// =============================================================================
// COUNT MODES
// =============================================================================

type CountMode int

const (
	// CountInclusive counts business days in [start, end].
	CountInclusive CountMode = iota
	// CountExclusiveStart counts business days in (start, end].
	CountExclusiveStart
)

// =============================================================================
// DAY CLASSIFICATION
// =============================================================================

// CalendarDay is the derived classification of a single date.
// Never persisted; computed on demand from the holiday set.
type CalendarDay struct {
	Date      Date
	IsWeekend bool
	IsHoliday bool
}

// Classify derives the weekend/holiday flags for a date.
func Classify(d Date, holidays HolidaySet) CalendarDay {
	return CalendarDay{
		Date:      d,
		IsWeekend: d.IsWeekend(),
		IsHoliday: holidays.Contains(d),
	}
}

// IsBusinessDay reports whether the date is neither a weekend day nor
// a listed holiday.
func IsBusinessDay(d Date, holidays HolidaySet) bool {
	return !d.IsWeekend() && !holidays.Contains(d)
}

// =============================================================================
// BUSINESS-DAY COUNTING
// =============================================================================

// CountBusinessDays counts business days between start and end under
// the given convention. Always >= 0; inverted ranges count as zero.
func CountBusinessDays(start, end Date, holidays HolidaySet, mode CountMode) int {
	first := start
	if mode == CountExclusiveStart {
		first = start.AddDays(1)
	}
	if end.Before(first) {
		return 0
	}

	count := 0
	for d := first; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if IsBusinessDay(d, holidays) {
			count++
		}
	}
	return count
}
