/*
grid.go - Day-by-day aggregation of logged vs expected hours

PURPOSE:
  BuildGrid walks a date range and produces one cell per day: total
  logged hours, expected hours (zero on weekends, holidays and approved
  leave, otherwise the schedule template), a status tag, and optional
  per-task breakdown rows. Week and month views are the same grid
  windowed to 7 or <=31 days; a month view additionally buckets days
  into ISO weeks for the week-summary rollup.

STATUS TAG PRECEDENCE (first match wins):
  weekend -> holiday -> approved leave -> full (logged >= expected,
  expected > 0) -> partial (logged > 0) -> missing

OCCUPATION RATE:
  round(100 * totalLogged / totalExpected) when totalExpected > 0,
  otherwise reported as unavailable - an all-holiday week has no rate,
  which is not a rate of 0%.

SEE ALSO:
  - engine/schedule.go: the raw (unadjusted) expected-hours lookup
  - team.go: the same machinery windowed per subordinate
*/
package timesheet

import (
	"sort"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// GRID INPUT - Plain data in; the host gathers it, the engine computes
// =============================================================================

// GridInput carries everything BuildGrid needs. Leaves holds the date
// ranges of APPROVED leave only; the caller filters by status.
type GridInput struct {
	EmployeeID engine.EmployeeID
	Range      engine.DateRange
	Entries    []TimeEntry
	Schedule   engine.WorkSchedule
	Holidays   engine.HolidaySet
	Leaves     []engine.DateRange
	// ByTask adds per-task breakdown rows to each day cell.
	ByTask bool
}

// =============================================================================
// GRID - One cell per day plus totals
// =============================================================================

// TaskHours is one breakdown row: hours logged on one task in one day.
type TaskHours struct {
	TaskID engine.TaskID
	Hours  engine.Hours
}

type DayCell struct {
	Date     engine.Date
	Logged   engine.Hours
	Expected engine.Hours
	Status   DayStatus
	// Tasks is populated only when GridInput.ByTask is set.
	Tasks []TaskHours
}

type Grid struct {
	EmployeeID    engine.EmployeeID
	Range         engine.DateRange
	Days          []DayCell
	TotalLogged   engine.Hours
	TotalExpected engine.Hours
}

// WeekSummary is the month view's per-ISO-week rollup.
type WeekSummary struct {
	Week          engine.ISOWeek
	TotalLogged   engine.Hours
	TotalExpected engine.Hours
}

// =============================================================================
// BUILD
// =============================================================================

// BuildGrid aggregates entries into a day-by-day grid over the range.
func BuildGrid(in GridInput) *Grid {
	grid := &Grid{
		EmployeeID:    in.EmployeeID,
		Range:         in.Range,
		TotalLogged:   engine.ZeroHours(),
		TotalExpected: engine.ZeroHours(),
	}

	loggedByDay := make(map[string]engine.Hours)
	tasksByDay := make(map[string]map[engine.TaskID]engine.Hours)
	for _, e := range in.Entries {
		if !in.Range.Contains(e.Date) {
			continue
		}
		key := e.Date.String()
		loggedByDay[key] = loggedByDay[key].Add(e.Hours)
		if in.ByTask {
			if tasksByDay[key] == nil {
				tasksByDay[key] = make(map[engine.TaskID]engine.Hours)
			}
			tasksByDay[key][e.TaskID] = tasksByDay[key][e.TaskID].Add(e.Hours)
		}
	}

	for _, date := range in.Range.Days() {
		cell := buildCell(date, loggedByDay[date.String()], in)
		if in.ByTask {
			cell.Tasks = taskRows(tasksByDay[date.String()])
		}
		grid.Days = append(grid.Days, cell)
		grid.TotalLogged = grid.TotalLogged.Add(cell.Logged)
		grid.TotalExpected = grid.TotalExpected.Add(cell.Expected)
	}
	return grid
}

func buildCell(date engine.Date, logged engine.Hours, in GridInput) DayCell {
	cell := DayCell{Date: date, Logged: logged, Expected: engine.ZeroHours()}

	onLeave := false
	for _, lr := range in.Leaves {
		if lr.Contains(date) {
			onLeave = true
			break
		}
	}

	day := engine.Classify(date, in.Holidays)
	switch {
	case day.IsWeekend:
		cell.Status = StatusWeekend
	case day.IsHoliday:
		cell.Status = StatusHoliday
	case onLeave:
		cell.Status = StatusLeave
	default:
		cell.Expected = in.Schedule.HoursOn(date.Weekday())
		switch {
		case cell.Expected.IsPositive() && logged.GreaterOrEqual(cell.Expected):
			cell.Status = StatusFull
		case logged.IsPositive():
			cell.Status = StatusPartial
		default:
			cell.Status = StatusMissing
		}
	}
	return cell
}

func taskRows(byTask map[engine.TaskID]engine.Hours) []TaskHours {
	if len(byTask) == 0 {
		return nil
	}
	rows := make([]TaskHours, 0, len(byTask))
	for id, h := range byTask {
		rows = append(rows, TaskHours{TaskID: id, Hours: h})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TaskID < rows[j].TaskID })
	return rows
}

// =============================================================================
// DERIVED VIEWS
// =============================================================================

// OccupationRate returns round(100 * logged / expected). The boolean is
// false when the period has no expected hours.
func (g *Grid) OccupationRate() (int, bool) {
	return g.TotalLogged.PercentOf(g.TotalExpected)
}

// WeekSummaries buckets the grid's days into ISO weeks, in order.
// Month views use this for the week-summary rollup.
func (g *Grid) WeekSummaries() []WeekSummary {
	byWeek := make(map[engine.ISOWeek]*WeekSummary)
	var order []engine.ISOWeek
	for _, cell := range g.Days {
		wk := cell.Date.ISOWeek()
		ws, ok := byWeek[wk]
		if !ok {
			ws = &WeekSummary{Week: wk, TotalLogged: engine.ZeroHours(), TotalExpected: engine.ZeroHours()}
			byWeek[wk] = ws
			order = append(order, wk)
		}
		ws.TotalLogged = ws.TotalLogged.Add(cell.Logged)
		ws.TotalExpected = ws.TotalExpected.Add(cell.Expected)
	}

	summaries := make([]WeekSummary, 0, len(order))
	for _, wk := range order {
		summaries = append(summaries, *byWeek[wk])
	}
	return summaries
}
