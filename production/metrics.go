/*
Package production derives the two per-task production metrics and
gates task status changes.

PURPOSE:
  - Rendement: the efficiency ratio of estimated vs actual hours,
    as a percentage rounded to one decimal. Above 100 is valid and
    means "faster than estimated".
  - Delai: the reception-to-delivery delay in business days,
    holiday-aware, counted exclusive of the reception day.
  - Status gate: a task may enter a terminal status only when it has
    at least one deliverable or deliverable links.

UNDEFINED IS NOT ZERO:
  Rendement with a missing/zero estimate or zero actual hours is
  undefined - callers display "—". It is not an error and not 0;
  returning 0 would read as "infinitely slow".

SEE ALSO:
  - engine/calendar.go: exclusive-start business-day counting
  - status.go: the terminal-status gate
*/
package production

import (
	"github.com/shopspring/decimal"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// TASK - The subset of the task record the engine reads and writes
// =============================================================================

type TaskStatus string

const (
	StatusReceived   TaskStatus = "received"
	StatusInProgress TaskStatus = "in_progress"
	StatusOnHold     TaskStatus = "on_hold"
	StatusDone       TaskStatus = "done"
	StatusDelivered  TaskStatus = "delivered"
)

type Task struct {
	ID            engine.TaskID
	ReceptionDate engine.Date
	// EstimatedHours is the per-unit time allowance ("gamme" time).
	// nil means no estimate was set.
	EstimatedHours *engine.Hours
	ActualHours    engine.Hours
	// Quantity of units produced; 0 is treated as 1.
	Quantity            int
	Status              TaskStatus
	DeliverableCount    int
	HasDeliverableLinks bool
}

// =============================================================================
// RENDEMENT - Efficiency ratio
// =============================================================================

var hundred = decimal.NewFromInt(100)

// Rendement returns round((estimated * quantity / actual) * 100, 1dp).
// The boolean is false when the ratio is undefined: no estimate, zero
// estimate, or zero actual hours. Quantity defaults to 1.
func Rendement(estimated *engine.Hours, quantity int, actual engine.Hours) (decimal.Decimal, bool) {
	if estimated == nil || estimated.IsZero() || actual.IsZero() {
		return decimal.Zero, false
	}
	if quantity <= 0 {
		quantity = 1
	}
	ratio := estimated.Value.
		Mul(decimal.NewFromInt(int64(quantity))).
		Div(actual.Value).
		Mul(hundred).
		Round(1)
	return ratio, true
}

// Rendement computes the task's own efficiency ratio.
func (t *Task) Rendement() (decimal.Decimal, bool) {
	return Rendement(t.EstimatedHours, t.Quantity, t.ActualHours)
}

// =============================================================================
// DELAI - Reception-to-delivery delay in business days
// =============================================================================

// DeliveryDelay counts business days strictly after reception up to
// and including the measurement date. Zero whenever the measurement
// date does not strictly exceed reception.
func DeliveryDelay(reception, measured engine.Date, holidays engine.HolidaySet) int {
	return engine.CountBusinessDays(reception, measured, holidays, engine.CountExclusiveStart)
}

// DelayAsOf measures the task's delay at the given date.
func (t *Task) DelayAsOf(measured engine.Date, holidays engine.HolidaySet) int {
	return DeliveryDelay(t.ReceptionDate, measured, holidays)
}
