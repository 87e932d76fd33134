/*
grid_test.go - Executable specification of the timesheet grid

ORGANIZATION:
  1. Status tag precedence - weekend > holiday > leave > full/partial/missing
  2. Expected hours adjustment - zero on weekend/holiday/leave days
  3. Occupation rate - rounding and the "unavailable" sentinel
  4. Month view - ISO-week summary rollup
  5. Task breakdown rows
*/
package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/timesheet"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

func fullTime35h() engine.WorkSchedule {
	return engine.NewWorkSchedule("full_time_35h", 7, 7, 7, 7, 7, 0, 0)
}

func entry(id string, date string, hours float64) timesheet.TimeEntry {
	e, err := timesheet.NewEntry(timesheet.EntryID(id), "emp-1", "task-100",
		engine.MustParseDate(date), engine.HoursFromFloat(hours))
	if err != nil {
		panic(err)
	}
	return *e
}

func taskEntry(id, task, date string, hours float64) timesheet.TimeEntry {
	e := entry(id, date, hours)
	e.TaskID = engine.TaskID(task)
	return e
}

func marchWeek() engine.DateRange {
	// Monday 2025-03-03 through Sunday 2025-03-09.
	return engine.WeekRange(engine.NewDate(2025, time.March, 3))
}

// =============================================================================
// STATUS TAG PRECEDENCE
// =============================================================================

func TestBuildGrid_StatusPrecedence(t *testing.T) {
	// GIVEN: a week with a holiday Tuesday, approved leave Wednesday,
	// a full Monday, a partial Thursday, and nothing Friday
	// THEN: each day carries the first matching tag

	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries: []timesheet.TimeEntry{
			entry("e1", "2025-03-03", 7), // full
			entry("e2", "2025-03-06", 3), // partial
		},
		Schedule: fullTime35h(),
		Holidays: engine.NewHolidaySet("2025-03-04"),
		Leaves: []engine.DateRange{{
			Start: engine.MustParseDate("2025-03-05"),
			End:   engine.MustParseDate("2025-03-05"),
		}},
	})

	require.Len(t, grid.Days, 7)
	statuses := make(map[string]timesheet.DayStatus)
	for _, cell := range grid.Days {
		statuses[cell.Date.String()] = cell.Status
	}

	assert.Equal(t, timesheet.StatusFull, statuses["2025-03-03"])
	assert.Equal(t, timesheet.StatusHoliday, statuses["2025-03-04"])
	assert.Equal(t, timesheet.StatusLeave, statuses["2025-03-05"])
	assert.Equal(t, timesheet.StatusPartial, statuses["2025-03-06"])
	assert.Equal(t, timesheet.StatusMissing, statuses["2025-03-07"])
	assert.Equal(t, timesheet.StatusWeekend, statuses["2025-03-08"])
	assert.Equal(t, timesheet.StatusWeekend, statuses["2025-03-09"])
}

func TestBuildGrid_WeekendBeatsHolidayAndLeave(t *testing.T) {
	// GIVEN: Saturday is both a listed holiday and inside a leave range
	// THEN: the weekend tag wins - precedence is top-down, first match

	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Schedule:   fullTime35h(),
		Holidays:   engine.NewHolidaySet("2025-03-08"),
		Leaves: []engine.DateRange{{
			Start: engine.MustParseDate("2025-03-07"),
			End:   engine.MustParseDate("2025-03-09"),
		}},
	})

	byDate := make(map[string]timesheet.DayCell)
	for _, cell := range grid.Days {
		byDate[cell.Date.String()] = cell
	}
	assert.Equal(t, timesheet.StatusLeave, byDate["2025-03-07"].Status)
	assert.Equal(t, timesheet.StatusWeekend, byDate["2025-03-08"].Status)
}

func TestBuildGrid_LoggedHoursOnLeaveDayStillShown(t *testing.T) {
	// An entry on a leave day keeps its logged hours visible; only the
	// expected side zeroes out.
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries:    []timesheet.TimeEntry{entry("e1", "2025-03-05", 2)},
		Schedule:   fullTime35h(),
		Leaves: []engine.DateRange{{
			Start: engine.MustParseDate("2025-03-05"),
			End:   engine.MustParseDate("2025-03-05"),
		}},
	})

	var wed timesheet.DayCell
	for _, cell := range grid.Days {
		if cell.Date.String() == "2025-03-05" {
			wed = cell
		}
	}
	assert.Equal(t, timesheet.StatusLeave, wed.Status)
	assert.True(t, wed.Logged.Equal(engine.HoursFromInt(2)))
	assert.True(t, wed.Expected.IsZero())
}

// =============================================================================
// EXPECTED HOURS AND TOTALS
// =============================================================================

func TestBuildGrid_ExpectedZeroOnNonWorkingDays(t *testing.T) {
	// 35h template, one holiday -> 28h expected for the week.
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Schedule:   fullTime35h(),
		Holidays:   engine.NewHolidaySet("2025-03-04"),
	})

	assert.True(t, grid.TotalExpected.Equal(engine.HoursFromInt(28)),
		"got %s", grid.TotalExpected)
}

func TestBuildGrid_MultipleEntriesSameDaySummed(t *testing.T) {
	// The aggregator sums transparently if the source allows multiple
	// entries per cell.
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries: []timesheet.TimeEntry{
			taskEntry("e1", "task-100", "2025-03-03", 4),
			taskEntry("e2", "task-200", "2025-03-03", 3),
		},
		Schedule: fullTime35h(),
	})

	assert.True(t, grid.Days[0].Logged.Equal(engine.HoursFromInt(7)))
	assert.Equal(t, timesheet.StatusFull, grid.Days[0].Status)
}

// =============================================================================
// OCCUPATION RATE
// =============================================================================

func TestGrid_OccupationRate(t *testing.T) {
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries: []timesheet.TimeEntry{
			entry("e1", "2025-03-03", 7),
			entry("e2", "2025-03-04", 7),
			entry("e3", "2025-03-05", 7),
			entry("e4", "2025-03-06", 7),
		},
		Schedule: fullTime35h(),
	})

	rate, ok := grid.OccupationRate()
	require.True(t, ok)
	assert.Equal(t, 80, rate) // 28 / 35
}

func TestGrid_OccupationRate_AllHolidayWeek_Unavailable(t *testing.T) {
	// GIVEN: every weekday is a holiday, so expected is zero
	// THEN: the rate is unavailable - reporting 0% would imply zero
	// capacity rather than no basis

	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Schedule:   fullTime35h(),
		Holidays: engine.NewHolidaySet(
			"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07"),
	})

	_, ok := grid.OccupationRate()
	assert.False(t, ok)
}

// =============================================================================
// MONTH VIEW - WEEK SUMMARIES
// =============================================================================

func TestGrid_WeekSummaries_MonthRollup(t *testing.T) {
	// GIVEN: March 2025 with hours in the first two ISO weeks
	// THEN: summaries bucket by ISO week, in order, covering every day

	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      engine.MonthRange(2025, time.March),
		Entries: []timesheet.TimeEntry{
			entry("e1", "2025-03-03", 7),  // ISO week 10
			entry("e2", "2025-03-10", 5),  // ISO week 11
			entry("e3", "2025-03-11", 2),  // ISO week 11
		},
		Schedule: fullTime35h(),
	})

	summaries := grid.WeekSummaries()
	// March 2025 spans ISO weeks 9 through 14.
	require.Len(t, summaries, 6)
	assert.Equal(t, engine.ISOWeek{Year: 2025, Week: 9}, summaries[0].Week)
	assert.Equal(t, engine.ISOWeek{Year: 2025, Week: 14}, summaries[5].Week)

	assert.True(t, summaries[1].TotalLogged.Equal(engine.HoursFromInt(7)))
	assert.True(t, summaries[1].TotalExpected.Equal(engine.HoursFromInt(35)))
	assert.True(t, summaries[2].TotalLogged.Equal(engine.HoursFromInt(7)))

	// Week 9 inside March is only Sat 1st and Sun 2nd.
	assert.True(t, summaries[0].TotalExpected.IsZero())
}

// =============================================================================
// TASK BREAKDOWN
// =============================================================================

func TestBuildGrid_ByTaskRows(t *testing.T) {
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries: []timesheet.TimeEntry{
			taskEntry("e1", "task-200", "2025-03-03", 3),
			taskEntry("e2", "task-100", "2025-03-03", 4),
		},
		Schedule: fullTime35h(),
		ByTask:   true,
	})

	rows := grid.Days[0].Tasks
	require.Len(t, rows, 2)
	// Sorted by task ID for stable rendering.
	assert.Equal(t, engine.TaskID("task-100"), rows[0].TaskID)
	assert.True(t, rows[0].Hours.Equal(engine.HoursFromInt(4)))
	assert.Equal(t, engine.TaskID("task-200"), rows[1].TaskID)
}

func TestBuildGrid_EntriesOutsideRangeIgnored(t *testing.T) {
	grid := timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: "emp-1",
		Range:      marchWeek(),
		Entries:    []timesheet.TimeEntry{entry("e1", "2025-03-10", 7)},
		Schedule:   fullTime35h(),
	})
	assert.True(t, grid.TotalLogged.IsZero())
}

// =============================================================================
// ENTRY INVARIANT
// =============================================================================

func TestNewEntry_HoursBounds(t *testing.T) {
	date := engine.MustParseDate("2025-03-03")

	_, err := timesheet.NewEntry("e1", "emp-1", "task-100", date, engine.HoursFromFloat(24))
	assert.NoError(t, err)

	_, err = timesheet.NewEntry("e2", "emp-1", "task-100", date, engine.HoursFromFloat(24.5))
	assert.True(t, engine.IsInvalidRange(err))

	_, err = timesheet.NewEntry("e3", "emp-1", "task-100", date, engine.HoursFromFloat(-1))
	assert.True(t, engine.IsInvalidRange(err))
}
