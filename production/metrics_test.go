/*
metrics_test.go - Executable specification of the production metrics

ORGANIZATION:
  1. Rendement - the efficiency ratio and its undefined cases
  2. Delai - holiday-aware reception-to-delivery delay
*/
package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/production"
)

func hoursPtr(v float64) *engine.Hours {
	h := engine.HoursFromFloat(v)
	return &h
}

// =============================================================================
// RENDEMENT
// =============================================================================

func TestRendement_EstimatedVsActual(t *testing.T) {
	// GIVEN: 8h estimated for one unit, 10h actually spent
	// THEN: rendement 80.0 - slower than estimated

	ratio, ok := production.Rendement(hoursPtr(8), 1, engine.HoursFromInt(10))
	require.True(t, ok)
	assert.True(t, ratio.Equal(decimal.NewFromInt(80)), "got %s", ratio)
}

func TestRendement_Above100IsValid(t *testing.T) {
	// Finishing faster than estimated exceeds 100 and is not clamped.
	ratio, ok := production.Rendement(hoursPtr(10), 1, engine.HoursFromInt(8))
	require.True(t, ok)
	assert.True(t, ratio.Equal(decimal.NewFromInt(125)), "got %s", ratio)
}

func TestRendement_QuantityScalesEstimate(t *testing.T) {
	// 12h per unit, 2 units, 30h spent -> 24/30 = 80.0
	ratio, ok := production.Rendement(hoursPtr(12), 2, engine.HoursFromInt(30))
	require.True(t, ok)
	assert.True(t, ratio.Equal(decimal.NewFromInt(80)), "got %s", ratio)
}

func TestRendement_RoundedToOneDecimal(t *testing.T) {
	// 8/12 = 66.666... -> 66.7
	ratio, ok := production.Rendement(hoursPtr(8), 1, engine.HoursFromInt(12))
	require.True(t, ok)
	assert.True(t, ratio.Equal(decimal.RequireFromString("66.7")), "got %s", ratio)
}

func TestRendement_UndefinedCases(t *testing.T) {
	// Undefined is a distinct outcome, not an error and not 0.
	cases := []struct {
		name      string
		estimated *engine.Hours
		actual    engine.Hours
	}{
		{"no estimate", nil, engine.HoursFromInt(10)},
		{"zero estimate", hoursPtr(0), engine.HoursFromInt(10)},
		{"zero actual", hoursPtr(8), engine.ZeroHours()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := production.Rendement(tc.estimated, 1, tc.actual)
			assert.False(t, ok)
		})
	}
}

func TestRendement_NonPositiveQuantityDefaultsToOne(t *testing.T) {
	base, ok := production.Rendement(hoursPtr(8), 1, engine.HoursFromInt(10))
	require.True(t, ok)

	for _, qty := range []int{0, -3} {
		ratio, ok := production.Rendement(hoursPtr(8), qty, engine.HoursFromInt(10))
		require.True(t, ok)
		assert.True(t, ratio.Equal(base))
	}
}

func TestTask_Rendement(t *testing.T) {
	task := &production.Task{
		ID:             "task-100",
		EstimatedHours: hoursPtr(8),
		ActualHours:    engine.HoursFromInt(10),
		Quantity:       1,
	}
	ratio, ok := task.Rendement()
	require.True(t, ok)
	assert.True(t, ratio.Equal(decimal.NewFromInt(80)))
}

// =============================================================================
// DELAI
// =============================================================================

func TestDeliveryDelay_ExcludesReceptionDay(t *testing.T) {
	// GIVEN: received Monday 2025-03-03, delivered Friday 2025-03-07
	// THEN: delay is 4 business days - Tue, Wed, Thu, Fri

	delay := production.DeliveryDelay(
		engine.MustParseDate("2025-03-03"),
		engine.MustParseDate("2025-03-07"),
		nil)
	assert.Equal(t, 4, delay)
}

func TestDeliveryDelay_SkipsWeekendsAndHolidays(t *testing.T) {
	// Received Fri 2025-05-02, measured Mon 2025-05-12. The span holds
	// two weekends plus the May 8 holiday: 5 working days after reception.
	delay := production.DeliveryDelay(
		engine.MustParseDate("2025-05-02"),
		engine.MustParseDate("2025-05-12"),
		engine.NewHolidaySet("2025-05-08"))
	assert.Equal(t, 5, delay)
}

func TestDeliveryDelay_SameDayIsZero(t *testing.T) {
	d := engine.MustParseDate("2025-03-03")
	assert.Zero(t, production.DeliveryDelay(d, d, nil))
}

func TestDelayAsOf_MeasuredBeforeReceptionIsZero(t *testing.T) {
	task := &production.Task{
		ID:            "task-100",
		ReceptionDate: engine.MustParseDate("2025-03-10"),
	}
	assert.Zero(t, task.DelayAsOf(engine.MustParseDate("2025-03-07"), nil))
}
