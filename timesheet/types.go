/*
Package timesheet aggregates logged time entries into day/week/month
grids and guards entries with the validation lock.

PURPOSE:
  Turns raw (employee, task, date, hours) entries into the numbers the
  host displays: per-day logged vs expected hours, day status tags,
  occupation rates, ISO-week rollups, and per-subordinate team rows.
  Also owns the entry lifecycle: create-or-update-on-save for a day
  cell, and bulk validation that freezes entries against further edits.

KEY CONCEPTS IN THIS FILE (types.go):
  - TimeEntry: one employee's hours on one task on one date
  - DayStatus: the tag a grid day carries (full, partial, missing,
    leave, holiday, weekend)

INVARIANTS:
  - 0 <= hours <= 24 per entry, enforced at construction
  - a validated entry is immutable to normal edits; only an explicit
    administrative unlock (outside this engine) reverts it
  - at most one entry per (employee, task, date) is assumed; if the
    source allows multiples the aggregator sums them transparently

SEE ALSO:
  - grid.go: day-by-day aggregation
  - lock.go: save-cell semantics and bulk validation
  - team.go: per-subordinate weekly rollup
*/
package timesheet

import (
	"fmt"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// TIME ENTRY
// =============================================================================

type EntryID string

// TimeEntry records hours an employee logged on a task for a date.
// Once Validated is true the entry is locked against edits and deletes.
type TimeEntry struct {
	ID         EntryID
	EmployeeID engine.EmployeeID
	TaskID     engine.TaskID
	Date       engine.Date
	Hours      engine.Hours
	Validated  bool
}

// NewEntry builds an entry, enforcing the hours invariant.
func NewEntry(id EntryID, employee engine.EmployeeID, task engine.TaskID, date engine.Date, hours engine.Hours) (*TimeEntry, error) {
	if hours.IsNegative() || hours.GreaterThan(engine.HoursFromInt(engine.MaxEntryHours)) {
		return nil, &engine.RangeError{
			What:   "entry hours",
			Detail: fmt.Sprintf("%s is outside [0, %d]", hours, engine.MaxEntryHours),
		}
	}
	return &TimeEntry{
		ID:         id,
		EmployeeID: employee,
		TaskID:     task,
		Date:       date,
		Hours:      hours,
	}, nil
}

// =============================================================================
// DAY STATUS - Tag carried by each grid day
// =============================================================================

type DayStatus string

const (
	StatusWeekend DayStatus = "weekend"
	StatusHoliday DayStatus = "holiday"
	StatusLeave   DayStatus = "leave"
	StatusFull    DayStatus = "full"
	StatusPartial DayStatus = "partial"
	StatusMissing DayStatus = "missing"
)
