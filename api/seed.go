/*
seed.go - Demo dataset

PURPOSE:
  Loads a small, self-consistent dataset so the API can be explored
  without a real backend: one manager with two subordinates, the two
  standard contract templates, the 2025 public-holiday list, a logged
  week, a couple of leave requests, and tasks in various production
  states. Integration tests reuse it as a known-good fixture.
*/
package api

import (
	"context"
	"time"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/leave"
	"github.com/warp/production-engine/production"
	"github.com/warp/production-engine/store/sqlite"
	"github.com/warp/production-engine/timesheet"
)

// Seed loads the demo dataset into an empty store.
func Seed(ctx context.Context, s *sqlite.Store) error {
	// Contract templates: 35h full time, 20h part time, Monday-Friday.
	schedules := []engine.WorkSchedule{
		engine.NewWorkSchedule("full_time_35h", 7, 7, 7, 7, 7, 0, 0),
		engine.NewWorkSchedule("part_time_20h", 4, 4, 4, 4, 4, 0, 0),
	}
	for _, ws := range schedules {
		if err := s.UpsertSchedule(ctx, ws); err != nil {
			return err
		}
	}

	// 2025 public holidays.
	holidays := map[string]string{
		"2025-01-01": "Jour de l'an",
		"2025-04-21": "Lundi de Paques",
		"2025-05-01": "Fete du travail",
		"2025-05-08": "Victoire 1945",
		"2025-05-29": "Ascension",
		"2025-06-09": "Lundi de Pentecote",
		"2025-07-14": "Fete nationale",
		"2025-08-15": "Assomption",
		"2025-11-01": "Toussaint",
		"2025-11-11": "Armistice 1918",
		"2025-12-25": "Noel",
	}
	for date, name := range holidays {
		if err := s.AddHoliday(ctx, date, name); err != nil {
			return err
		}
	}

	employees := []sqlite.Employee{
		{ID: "mgr-claire", Name: "Claire Fontaine", ContractType: "full_time_35h"},
		{ID: "emp-marc", Name: "Marc Lemoine", ContractType: "full_time_35h", ManagerID: "mgr-claire"},
		{ID: "emp-sofia", Name: "Sofia Rey", ContractType: "part_time_20h", ManagerID: "mgr-claire"},
	}
	for _, e := range employees {
		if err := s.InsertEmployee(ctx, e); err != nil {
			return err
		}
	}

	leaveTypes := []leave.LeaveType{
		{ID: "cp", Name: "Conges payes", AnnualAllowance: 25, CarryOver: true},
		{ID: "rtt", Name: "RTT", AnnualAllowance: 10},
	}
	for _, lt := range leaveTypes {
		if err := s.InsertLeaveType(ctx, lt); err != nil {
			return err
		}
	}

	// A logged week: March 3-7, 2025 (Monday through Friday).
	entries := []struct {
		id       timesheet.EntryID
		employee engine.EmployeeID
		task     engine.TaskID
		date     string
		hours    float64
		valid    bool
	}{
		{"te-seed-1", "emp-marc", "task-100", "2025-03-03", 7, true},
		{"te-seed-2", "emp-marc", "task-100", "2025-03-04", 4, false},
		{"te-seed-3", "emp-marc", "task-200", "2025-03-04", 3, false},
		{"te-seed-4", "emp-marc", "task-200", "2025-03-05", 7, false},
		{"te-seed-5", "emp-sofia", "task-100", "2025-03-03", 4, true},
		{"te-seed-6", "emp-sofia", "task-100", "2025-03-04", 2, false},
	}
	for _, row := range entries {
		entry, err := timesheet.NewEntry(row.id, row.employee, row.task,
			engine.MustParseDate(row.date), engine.HoursFromFloat(row.hours))
		if err != nil {
			return err
		}
		entry.Validated = row.valid
		if err := s.InsertEntry(ctx, entry); err != nil {
			return err
		}
	}

	// An approved leave and a pending one.
	holidaySet, err := s.Holidays(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	approved, err := leave.NewRequest("lr-seed-1", "emp-marc", "cp",
		engine.MustParseDate("2025-03-10"), engine.MustParseDate("2025-03-14"), holidaySet, now)
	if err != nil {
		return err
	}
	if err := approved.Approve("mgr-claire", now); err != nil {
		return err
	}
	pending, err := leave.NewRequest("lr-seed-2", "emp-sofia", "rtt",
		engine.MustParseDate("2025-04-22"), engine.MustParseDate("2025-04-22"), holidaySet, now)
	if err != nil {
		return err
	}
	for _, lr := range []*leave.LeaveRequest{approved, pending} {
		if err := s.InsertLeaveRequest(ctx, lr); err != nil {
			return err
		}
	}

	eight := engine.HoursFromInt(8)
	twelve := engine.HoursFromInt(12)
	tasks := []*production.Task{
		{
			ID:            "task-100",
			ReceptionDate: engine.MustParseDate("2025-03-03"),
			EstimatedHours: &eight, ActualHours: engine.HoursFromInt(10),
			Quantity: 1, Status: production.StatusInProgress,
		},
		{
			ID:            "task-200",
			ReceptionDate: engine.MustParseDate("2025-02-24"),
			EstimatedHours: &twelve, ActualHours: engine.HoursFromInt(10),
			Quantity: 2, Status: production.StatusDone,
			DeliverableCount: 3,
		},
		{
			// No estimate: rendement stays undefined.
			ID:            "task-300",
			ReceptionDate: engine.MustParseDate("2025-03-05"),
			ActualHours:   engine.HoursFromInt(2),
			Quantity:      1, Status: production.StatusReceived,
		},
	}
	for _, t := range tasks {
		if err := s.UpsertTask(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
