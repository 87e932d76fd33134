package timesheet

import "github.com/warp/production-engine/engine"

// =============================================================================
// TEAM VIEW - One row per subordinate for a given week
// =============================================================================

// TeamMemberInput is one subordinate's data for the week. The host
// resolves who reports to whom and each member's schedule; the engine
// only aggregates.
type TeamMemberInput struct {
	EmployeeID engine.EmployeeID
	Entries    []TimeEntry
	Schedule   engine.WorkSchedule
	Leaves     []engine.DateRange
}

// TeamMemberWeek is the aggregated row for one subordinate.
// PendingEntryIDs feeds bulk validation directly.
type TeamMemberWeek struct {
	EmployeeID      engine.EmployeeID
	TotalLogged     engine.Hours
	TotalExpected   engine.Hours
	OccupationRate  int
	RateKnown       bool
	ValidatedCount  int
	PendingCount    int
	PendingEntryIDs []EntryID
}

// TeamWeek aggregates one row per member over the given week.
func TeamWeek(week engine.DateRange, holidays engine.HolidaySet, members []TeamMemberInput) []TeamMemberWeek {
	rows := make([]TeamMemberWeek, 0, len(members))
	for _, m := range members {
		grid := BuildGrid(GridInput{
			EmployeeID: m.EmployeeID,
			Range:      week,
			Entries:    m.Entries,
			Schedule:   m.Schedule,
			Holidays:   holidays,
			Leaves:     m.Leaves,
		})

		row := TeamMemberWeek{
			EmployeeID:    m.EmployeeID,
			TotalLogged:   grid.TotalLogged,
			TotalExpected: grid.TotalExpected,
		}
		row.OccupationRate, row.RateKnown = grid.OccupationRate()

		for _, e := range m.Entries {
			if !week.Contains(e.Date) {
				continue
			}
			if e.Validated {
				row.ValidatedCount++
			} else {
				row.PendingCount++
				row.PendingEntryIDs = append(row.PendingEntryIDs, e.ID)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
