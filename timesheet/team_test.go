package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/timesheet"
)

func TestTeamWeek_OneRowPerMember(t *testing.T) {
	// GIVEN: a manager's week with two subordinates - one fully logged
	// and validated, one partially logged with pending entries
	// THEN: each row carries the totals, rate, and the pending IDs that
	// feed bulk validation

	week := engine.WeekRange(engine.NewDate(2025, time.March, 3))

	marcEntries := []timesheet.TimeEntry{
		entry("m1", "2025-03-03", 7),
		entry("m2", "2025-03-04", 7),
		entry("m3", "2025-03-05", 7),
		entry("m4", "2025-03-06", 7),
		entry("m5", "2025-03-07", 7),
	}
	for i := range marcEntries {
		marcEntries[i].EmployeeID = "emp-marc"
		marcEntries[i].Validated = true
	}

	sofiaEntries := []timesheet.TimeEntry{
		entry("s1", "2025-03-03", 7),
		entry("s2", "2025-03-04", 3),
	}
	for i := range sofiaEntries {
		sofiaEntries[i].EmployeeID = "emp-sofia"
	}

	rows := timesheet.TeamWeek(week, nil, []timesheet.TeamMemberInput{
		{EmployeeID: "emp-marc", Entries: marcEntries, Schedule: fullTime35h()},
		{EmployeeID: "emp-sofia", Entries: sofiaEntries, Schedule: fullTime35h()},
	})
	require.Len(t, rows, 2)

	marc := rows[0]
	assert.Equal(t, engine.EmployeeID("emp-marc"), marc.EmployeeID)
	assert.True(t, marc.TotalLogged.Equal(engine.HoursFromInt(35)))
	require.True(t, marc.RateKnown)
	assert.Equal(t, 100, marc.OccupationRate)
	assert.Equal(t, 5, marc.ValidatedCount)
	assert.Zero(t, marc.PendingCount)
	assert.Empty(t, marc.PendingEntryIDs)

	sofia := rows[1]
	assert.True(t, sofia.TotalLogged.Equal(engine.HoursFromInt(10)))
	require.True(t, sofia.RateKnown)
	assert.Equal(t, 29, sofia.OccupationRate) // round(100 * 10/35)
	assert.Equal(t, 2, sofia.PendingCount)
	assert.ElementsMatch(t, []timesheet.EntryID{"s1", "s2"}, sofia.PendingEntryIDs)
}

func TestTeamWeek_MemberOnLeaveAllWeek(t *testing.T) {
	// A week fully covered by approved leave has no expected hours, so
	// the member's rate is unavailable rather than zero.
	week := engine.WeekRange(engine.NewDate(2025, time.March, 10))

	rows := timesheet.TeamWeek(week, nil, []timesheet.TeamMemberInput{{
		EmployeeID: "emp-marc",
		Schedule:   fullTime35h(),
		Leaves:     []engine.DateRange{week},
	}})
	require.Len(t, rows, 1)

	assert.False(t, rows[0].RateKnown)
	assert.True(t, rows[0].TotalExpected.IsZero())
}

func TestTeamWeek_EntriesOutsideWeekNotCounted(t *testing.T) {
	week := engine.WeekRange(engine.NewDate(2025, time.March, 3))
	outside := entry("x1", "2025-03-10", 7)

	rows := timesheet.TeamWeek(week, nil, []timesheet.TeamMemberInput{{
		EmployeeID: "emp-1",
		Entries:    []timesheet.TimeEntry{outside},
		Schedule:   fullTime35h(),
	}})

	assert.Zero(t, rows[0].PendingCount)
	assert.True(t, rows[0].TotalLogged.IsZero())
}
