/*
schedule.go - Weekly work-schedule templates and expected-hours resolution

PURPOSE:
  A WorkSchedule maps each weekday to the hours an employee on that
  contract type is expected to work. ExpectedHours sums the template
  over a date range - the RAW template, with no holiday or leave
  adjustment. The aggregate views in the timesheet package apply those
  adjustments; raw capacity planning needs the unadjusted number, and
  occupation-rate views need to show a day as "leave" rather than
  "missing", so the two lookups stay distinct.

RESOLUTION:
  Schedules are configuration owned by the host; the engine only reads
  them. ScheduleSet.Resolve fails with an Unresolved error when the
  contract type has no template - "expected hours unknown" must never
  collapse into "expected hours zero", because zero is what a holiday
  legitimately contributes.

SEE ALSO:
  - types.go: Hours, ContractType
  - timesheet/grid.go: adjusted expected hours per day
*/
package engine

import "time"

// =============================================================================
// WORK SCHEDULE - Per-contract-type weekly template
// =============================================================================

// WorkSchedule holds expected hours for each of the seven weekdays.
// The weekly total equals the sum of the per-day values; the host
// enforces that at write time, the engine only reads it.
type WorkSchedule struct {
	ContractType ContractType
	// Daily is indexed by time.Weekday (Sunday = 0).
	Daily       [7]Hours
	WeeklyTotal Hours
}

// NewWorkSchedule builds a schedule from Monday-first day values, the
// order configuration screens present them in.
func NewWorkSchedule(ct ContractType, mon, tue, wed, thu, fri, sat, sun float64) WorkSchedule {
	ws := WorkSchedule{ContractType: ct}
	ws.Daily[time.Monday] = HoursFromFloat(mon)
	ws.Daily[time.Tuesday] = HoursFromFloat(tue)
	ws.Daily[time.Wednesday] = HoursFromFloat(wed)
	ws.Daily[time.Thursday] = HoursFromFloat(thu)
	ws.Daily[time.Friday] = HoursFromFloat(fri)
	ws.Daily[time.Saturday] = HoursFromFloat(sat)
	ws.Daily[time.Sunday] = HoursFromFloat(sun)
	total := ZeroHours()
	for _, h := range ws.Daily {
		total = total.Add(h)
	}
	ws.WeeklyTotal = total
	return ws
}

// HoursOn returns the template hours for a weekday.
func (ws WorkSchedule) HoursOn(day time.Weekday) Hours {
	return ws.Daily[day]
}

// ExpectedHours sums the raw template over the range. No holiday or
// leave adjustment; see the package comment for why.
func (ws WorkSchedule) ExpectedHours(r DateRange) Hours {
	total := ZeroHours()
	for d := r.Start; d.BeforeOrEqual(r.End); d = d.AddDays(1) {
		total = total.Add(ws.Daily[d.Weekday()])
	}
	return total
}

// =============================================================================
// SCHEDULE SET - Resolver from contract type to template
// =============================================================================

type ScheduleSet map[ContractType]WorkSchedule

// Resolve returns the template for a contract type, or an Unresolved
// error when none is configured.
func (ss ScheduleSet) Resolve(ct ContractType) (WorkSchedule, error) {
	ws, ok := ss[ct]
	if !ok {
		return WorkSchedule{}, &UnresolvedScheduleError{ContractType: ct}
	}
	return ws, nil
}

// ExpectedHours resolves the contract type and sums its raw template
// over the range.
func (ss ScheduleSet) ExpectedHours(ct ContractType, r DateRange) (Hours, error) {
	ws, err := ss.Resolve(ct)
	if err != nil {
		return Hours{}, err
	}
	return ws.ExpectedHours(r), nil
}
