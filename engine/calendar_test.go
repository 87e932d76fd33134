/*
calendar_test.go - Executable specification of the business calendar

ORGANIZATION:
  1. Counting conventions - inclusive vs exclusive-start
  2. Day classification - weekends, holidays, holiday-on-weekend
  3. Properties - empty ranges, monotonicity, full-week invariant
*/
package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// COUNTING CONVENTIONS
// =============================================================================

func TestCountBusinessDays_Inclusive_FullWorkWeek(t *testing.T) {
	// GIVEN: Monday 2025-03-03 through Friday 2025-03-07, no holidays
	// WHEN: counting inclusively
	// THEN: all five days count

	start := engine.NewDate(2025, time.March, 3)
	end := engine.NewDate(2025, time.March, 7)

	got := engine.CountBusinessDays(start, end, nil, engine.CountInclusive)
	assert.Equal(t, 5, got)
}

func TestCountBusinessDays_Inclusive_HolidayExcluded(t *testing.T) {
	// GIVEN: the same week with a holiday on Tuesday the 4th
	// THEN: four days count

	start := engine.NewDate(2025, time.March, 3)
	end := engine.NewDate(2025, time.March, 7)
	holidays := engine.NewHolidaySet("2025-03-04")

	got := engine.CountBusinessDays(start, end, holidays, engine.CountInclusive)
	assert.Equal(t, 4, got)
}

func TestCountBusinessDays_ExclusiveStart_SkipsFirstDay(t *testing.T) {
	// GIVEN: reception Monday 2025-03-03, delivery Friday 2025-03-07
	// WHEN: counting exclusive of the start day
	// THEN: Tuesday through Friday count -> 4

	reception := engine.NewDate(2025, time.March, 3)
	delivery := engine.NewDate(2025, time.March, 7)

	got := engine.CountBusinessDays(reception, delivery, nil, engine.CountExclusiveStart)
	assert.Equal(t, 4, got)
}

func TestCountBusinessDays_SpanningWeekend(t *testing.T) {
	// GIVEN: Friday 2025-03-07 through Monday 2025-03-10
	// THEN: inclusive counts Friday and Monday only

	start := engine.NewDate(2025, time.March, 7)
	end := engine.NewDate(2025, time.March, 10)

	assert.Equal(t, 2, engine.CountBusinessDays(start, end, nil, engine.CountInclusive))
	assert.Equal(t, 1, engine.CountBusinessDays(start, end, nil, engine.CountExclusiveStart))
}

// =============================================================================
// EMPTY AND INVERTED RANGES
// =============================================================================

func TestCountBusinessDays_InvertedRange_IsZeroNotError(t *testing.T) {
	// Callers rely on 0 meaning "zero duration", not a fault.
	start := engine.NewDate(2025, time.March, 10)
	end := engine.NewDate(2025, time.March, 3)

	assert.Equal(t, 0, engine.CountBusinessDays(start, end, nil, engine.CountInclusive))
	assert.Equal(t, 0, engine.CountBusinessDays(start, end, nil, engine.CountExclusiveStart))
}

func TestCountBusinessDays_SameDay(t *testing.T) {
	// GIVEN: a single business day
	// THEN: inclusive counts it, exclusive-start does not

	monday := engine.NewDate(2025, time.March, 3)

	assert.Equal(t, 1, engine.CountBusinessDays(monday, monday, nil, engine.CountInclusive))
	assert.Equal(t, 0, engine.CountBusinessDays(monday, monday, nil, engine.CountExclusiveStart))
}

// =============================================================================
// DAY CLASSIFICATION
// =============================================================================

func TestClassify_Flags(t *testing.T) {
	holidays := engine.NewHolidaySet("2025-03-04", "2025-03-08")

	tests := []struct {
		name      string
		date      engine.Date
		isWeekend bool
		isHoliday bool
	}{
		{"plain weekday", engine.NewDate(2025, time.March, 3), false, false},
		{"weekday holiday", engine.NewDate(2025, time.March, 4), false, true},
		{"saturday", engine.NewDate(2025, time.March, 1), true, false},
		{"holiday on saturday", engine.NewDate(2025, time.March, 8), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := engine.Classify(tt.date, holidays)
			assert.Equal(t, tt.isWeekend, day.IsWeekend)
			assert.Equal(t, tt.isHoliday, day.IsHoliday)
		})
	}
}

func TestIsBusinessDay_HolidayOnWeekend_NoAdditionalEffect(t *testing.T) {
	// A holiday on a Saturday fails the test for being a Saturday;
	// listing it as a holiday changes nothing.
	saturday := engine.NewDate(2025, time.March, 8)

	assert.False(t, engine.IsBusinessDay(saturday, nil))
	assert.False(t, engine.IsBusinessDay(saturday, engine.NewHolidaySet("2025-03-08")))
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestCountBusinessDays_MonotoneInEndDate(t *testing.T) {
	// Extending the end while holding the start fixed never decreases
	// the count.
	start := engine.NewDate(2025, time.February, 24)
	holidays := engine.NewHolidaySet("2025-03-04")

	prev := 0
	for i := 0; i < 30; i++ {
		end := start.AddDays(i)
		got := engine.CountBusinessDays(start, end, holidays, engine.CountInclusive)
		assert.GreaterOrEqual(t, got, prev, "count shrank when end moved to %s", end)
		prev = got
	}
}

func TestCountBusinessDays_AnyFullWeek_IsFive(t *testing.T) {
	// Any 7 consecutive days with no holidays contain exactly 5
	// business days, wherever the window starts.
	anchor := engine.NewDate(2025, time.March, 3)
	for offset := 0; offset < 7; offset++ {
		start := anchor.AddDays(offset)
		got := engine.CountBusinessDays(start, start.AddDays(6), nil, engine.CountInclusive)
		assert.Equal(t, 5, got, "week starting %s", start)
	}
}

// =============================================================================
// DATE PARSING
// =============================================================================

func TestParseDate(t *testing.T) {
	d, err := engine.ParseDate("2025-03-03")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-03", d.String())
	assert.Equal(t, time.Monday, d.Weekday())

	_, err = engine.ParseDate("03/03/2025")
	assert.Error(t, err)
}
