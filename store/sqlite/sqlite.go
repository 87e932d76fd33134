/*
Package sqlite provides the SQLite-backed persistence collaborator.

PURPOSE:
  Implements the storage the engine's host needs: time entries behind
  the validation-lock contract, leave requests behind the state
  machine, plus the read-only reference data (employees, schedules,
  holidays, leave types) and the task records production metrics read
  and write through.

INTERFACES IMPLEMENTED:
  timesheet.EntryStore: conditional-update entry persistence

LOCK SERIALIZATION:
  The validated flag is never read-then-written in Go; every
  state-dependent write is a single conditional UPDATE/DELETE keyed on
  is_validated = 0, and RowsAffected tells the caller whether the row
  actually changed. A concurrent edit against an entry mid-validation
  either lands before the validation or changes zero rows and surfaces
  as Locked. Leave transitions use the same shape, keyed on
  status = 'pending'.

KEY TABLES:
  time_entries:    one row per (employee, task, date) cell
  leave_requests:  soft lifecycle only, never hard-deleted
  work_schedules:  weekly template per contract type
  holidays:        ISO date strings from the public-holiday feed
  leave_types:     static reference data
  employees:       contract type + manager link for team views
  tasks:           reception date, estimate, actuals, deliverables

WAL MODE:
  Opened with WAL and foreign keys on; readers don't block and a
  single writer at a time is plenty for an internal tool.

USAGE:
  store, err := sqlite.New("./data/production.db")
  defer store.Close()

SEE ALSO:
  - timesheet/lock.go: the conditional-update contract
  - store/memory.go: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/leave"
	"github.com/warp/production-engine/production"
	"github.com/warp/production-engine/timesheet"
)

// Store implements the persistence collaborator over SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path. Use ":memory:" for an
// in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// An in-memory database exists per connection; keep the pool at
		// one so every query sees the same database.
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		manager_id TEXT
	);

	CREATE TABLE IF NOT EXISTS work_schedules (
		contract_type TEXT PRIMARY KEY,
		monday TEXT NOT NULL, tuesday TEXT NOT NULL, wednesday TEXT NOT NULL,
		thursday TEXT NOT NULL, friday TEXT NOT NULL,
		saturday TEXT NOT NULL, sunday TEXT NOT NULL,
		weekly_total TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT PRIMARY KEY,
		name TEXT
	);

	CREATE TABLE IF NOT EXISTS leave_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		annual_allowance INTEGER NOT NULL,
		carry_over INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS time_entries (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		task_id TEXT NOT NULL,
		date TEXT NOT NULL,
		hours TEXT NOT NULL,
		is_validated INTEGER NOT NULL DEFAULT 0,
		UNIQUE(employee_id, task_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_time_entries_employee_date
		ON time_entries(employee_id, date);

	CREATE TABLE IF NOT EXISTS leave_requests (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		leave_type_id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL,
		days INTEGER NOT NULL,
		decided_by TEXT,
		decided_at TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leave_requests_employee
		ON leave_requests(employee_id);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		reception_date TEXT NOT NULL,
		estimated_hours TEXT,
		actual_hours TEXT NOT NULL DEFAULT '0',
		quantity INTEGER NOT NULL DEFAULT 1,
		status TEXT NOT NULL,
		deliverable_count INTEGER NOT NULL DEFAULT 0,
		has_deliverable_links INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Reset drops all rows. Dev and test use only.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{
		"time_entries", "leave_requests", "tasks",
		"employees", "work_schedules", "holidays", "leave_types",
	} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// Employee is the host-side record the engine reads facts from.
type Employee struct {
	ID           engine.EmployeeID
	Name         string
	ContractType engine.ContractType
	ManagerID    engine.EmployeeID
}

func (s *Store) InsertEmployee(ctx context.Context, e Employee) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, contract_type, manager_id) VALUES (?, ?, ?, ?)`,
		string(e.ID), e.Name, string(e.ContractType), string(e.ManagerID))
	return err
}

// Employee returns the record, or nil when unknown.
func (s *Store) Employee(ctx context.Context, id engine.EmployeeID) (*Employee, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, contract_type, COALESCE(manager_id, '') FROM employees WHERE id = ?`, string(id))
	var e Employee
	if err := row.Scan(&e.ID, &e.Name, &e.ContractType, &e.ManagerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Subordinates returns the employees reporting to the given manager.
func (s *Store) Subordinates(ctx context.Context, manager engine.EmployeeID) ([]Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, contract_type, COALESCE(manager_id, '') FROM employees WHERE manager_id = ? ORDER BY id`,
		string(manager))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.ContractType, &e.ManagerID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// =============================================================================
// WORK SCHEDULES
// =============================================================================

func (s *Store) UpsertSchedule(ctx context.Context, ws engine.WorkSchedule) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_schedules
			(contract_type, monday, tuesday, wednesday, thursday, friday, saturday, sunday, weekly_total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(contract_type) DO UPDATE SET
			monday=excluded.monday, tuesday=excluded.tuesday, wednesday=excluded.wednesday,
			thursday=excluded.thursday, friday=excluded.friday,
			saturday=excluded.saturday, sunday=excluded.sunday,
			weekly_total=excluded.weekly_total`,
		string(ws.ContractType),
		ws.Daily[time.Monday].String(), ws.Daily[time.Tuesday].String(),
		ws.Daily[time.Wednesday].String(), ws.Daily[time.Thursday].String(),
		ws.Daily[time.Friday].String(), ws.Daily[time.Saturday].String(),
		ws.Daily[time.Sunday].String(), ws.WeeklyTotal.String())
	return err
}

// Schedules loads every configured template as a resolver set.
func (s *Store) Schedules(ctx context.Context) (engine.ScheduleSet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT contract_type, monday, tuesday, wednesday, thursday, friday, saturday, sunday, weekly_total
		FROM work_schedules`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(engine.ScheduleSet)
	for rows.Next() {
		var ct string
		raw := make([]string, 8)
		if err := rows.Scan(&ct, &raw[0], &raw[1], &raw[2], &raw[3], &raw[4], &raw[5], &raw[6], &raw[7]); err != nil {
			return nil, err
		}
		ws := engine.WorkSchedule{ContractType: engine.ContractType(ct)}
		days := []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday,
		}
		for i, day := range days {
			h, err := engine.ParseHours(raw[i])
			if err != nil {
				return nil, fmt.Errorf("schedule %s has bad hours %q: %w", ct, raw[i], err)
			}
			ws.Daily[day] = h
		}
		total, err := engine.ParseHours(raw[7])
		if err != nil {
			return nil, fmt.Errorf("schedule %s has bad total %q: %w", ct, raw[7], err)
		}
		ws.WeeklyTotal = total
		set[ws.ContractType] = ws
	}
	return set, rows.Err()
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) AddHoliday(ctx context.Context, date, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (date, name) VALUES (?, ?) ON CONFLICT(date) DO NOTHING`, date, name)
	return err
}

// Holidays returns the full holiday set.
func (s *Store) Holidays(ctx context.Context) (engine.HolidaySet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date FROM holidays`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := engine.NewHolidaySet()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		set.Add(d)
	}
	return set, rows.Err()
}

// =============================================================================
// LEAVE TYPES
// =============================================================================

func (s *Store) InsertLeaveType(ctx context.Context, lt leave.LeaveType) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leave_types (id, name, annual_allowance, carry_over) VALUES (?, ?, ?, ?)`,
		string(lt.ID), lt.Name, lt.AnnualAllowance, boolToInt(lt.CarryOver))
	return err
}

// LeaveType returns the reference record, or nil when unknown.
func (s *Store) LeaveType(ctx context.Context, id leave.LeaveTypeID) (*leave.LeaveType, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, annual_allowance, carry_over FROM leave_types WHERE id = ?`, string(id))
	var lt leave.LeaveType
	var carry int
	if err := row.Scan(&lt.ID, &lt.Name, &lt.AnnualAllowance, &carry); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	lt.CarryOver = carry != 0
	return &lt, nil
}

// =============================================================================
// TIME ENTRIES - timesheet.EntryStore
// =============================================================================

var _ timesheet.EntryStore = (*Store)(nil)

func (s *Store) Entry(ctx context.Context, id timesheet.EntryID) (*timesheet.TimeEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, employee_id, task_id, date, hours, is_validated FROM time_entries WHERE id = ?`,
		string(id))
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, timesheet.ErrEntryNotFound
	}
	return e, err
}

func (s *Store) FindCell(ctx context.Context, employee engine.EmployeeID, task engine.TaskID, date engine.Date) (*timesheet.TimeEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, employee_id, task_id, date, hours, is_validated
		 FROM time_entries WHERE employee_id = ? AND task_id = ? AND date = ?`,
		string(employee), string(task), date.String())
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (s *Store) InsertEntry(ctx context.Context, e *timesheet.TimeEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_entries (id, employee_id, task_id, date, hours, is_validated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(e.ID), string(e.EmployeeID), string(e.TaskID),
		e.Date.String(), e.Hours.String(), boolToInt(e.Validated))
	return err
}

// UpdateHoursIfPending is a single conditional UPDATE keyed on the
// lock flag; RowsAffected reports whether the entry was still pending.
func (s *Store) UpdateHoursIfPending(ctx context.Context, id timesheet.EntryID, hours engine.Hours) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE time_entries SET hours = ? WHERE id = ? AND is_validated = 0`,
		hours.String(), string(id))
	if err != nil {
		return false, err
	}
	return oneRowChanged(res)
}

func (s *Store) DeleteIfPending(ctx context.Context, id timesheet.EntryID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM time_entries WHERE id = ? AND is_validated = 0`, string(id))
	if err != nil {
		return false, err
	}
	return oneRowChanged(res)
}

func (s *Store) ValidateIfPending(ctx context.Context, id timesheet.EntryID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE time_entries SET is_validated = 1 WHERE id = ? AND is_validated = 0`, string(id))
	if err != nil {
		return false, err
	}
	return oneRowChanged(res)
}

// EntriesByEmployee returns the employee's entries within the range.
func (s *Store) EntriesByEmployee(ctx context.Context, employee engine.EmployeeID, r engine.DateRange) ([]timesheet.TimeEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, task_id, date, hours, is_validated
		 FROM time_entries
		 WHERE employee_id = ? AND date >= ? AND date <= ?
		 ORDER BY date, task_id`,
		string(employee), r.Start.String(), r.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []timesheet.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEntry(row scannable) (*timesheet.TimeEntry, error) {
	var (
		e           timesheet.TimeEntry
		date, hours string
		validated   int
	)
	if err := row.Scan(&e.ID, &e.EmployeeID, &e.TaskID, &date, &hours, &validated); err != nil {
		return nil, err
	}
	d, err := engine.ParseDate(date)
	if err != nil {
		return nil, err
	}
	h, err := engine.ParseHours(hours)
	if err != nil {
		return nil, err
	}
	e.Date = d
	e.Hours = h
	e.Validated = validated != 0
	return &e, nil
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

func (s *Store) InsertLeaveRequest(ctx context.Context, r *leave.LeaveRequest) error {
	var decidedAt any
	if r.DecidedAt != nil {
		decidedAt = r.DecidedAt.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leave_requests
			(id, employee_id, leave_type_id, start_date, end_date, status, days, decided_by, decided_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(r.ID), string(r.EmployeeID), string(r.LeaveTypeID),
		r.Start.String(), r.End.String(), string(r.Status), r.Days,
		r.DecidedBy, decidedAt, r.CreatedAt.Format(time.RFC3339))
	return err
}

// LeaveRequest returns the record, or nil when unknown.
func (s *Store) LeaveRequest(ctx context.Context, id leave.RequestID) (*leave.LeaveRequest, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, employee_id, leave_type_id, start_date, end_date, status, days,
		        COALESCE(decided_by, ''), decided_at, created_at
		 FROM leave_requests WHERE id = ?`, string(id))
	r, err := scanLeaveRequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

func (s *Store) LeaveRequestsByEmployee(ctx context.Context, employee engine.EmployeeID) ([]*leave.LeaveRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, employee_id, leave_type_id, start_date, end_date, status, days,
		        COALESCE(decided_by, ''), decided_at, created_at
		 FROM leave_requests WHERE employee_id = ? ORDER BY start_date`,
		string(employee))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*leave.LeaveRequest
	for rows.Next() {
		r, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpdateLeaveStatusIfPending applies a transition iff the request is
// still pending, same conditional shape as the entry lock.
func (s *Store) UpdateLeaveStatusIfPending(ctx context.Context, id leave.RequestID, to leave.Status, decidedBy string, at time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE leave_requests SET status = ?, decided_by = ?, decided_at = ?
		 WHERE id = ? AND status = 'pending'`,
		string(to), decidedBy, at.Format(time.RFC3339), string(id))
	if err != nil {
		return false, err
	}
	return oneRowChanged(res)
}

func scanLeaveRequest(row scannable) (*leave.LeaveRequest, error) {
	var (
		r                     leave.LeaveRequest
		start, end, createdAt string
		decidedAt             sql.NullString
	)
	if err := row.Scan(&r.ID, &r.EmployeeID, &r.LeaveTypeID, &start, &end,
		&r.Status, &r.Days, &r.DecidedBy, &decidedAt, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if r.Start, err = engine.ParseDate(start); err != nil {
		return nil, err
	}
	if r.End, err = engine.ParseDate(end); err != nil {
		return nil, err
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	if decidedAt.Valid {
		t, err := time.Parse(time.RFC3339, decidedAt.String)
		if err != nil {
			return nil, err
		}
		r.DecidedAt = &t
	}
	return &r, nil
}

// =============================================================================
// TASKS
// =============================================================================

func (s *Store) UpsertTask(ctx context.Context, t *production.Task) error {
	var estimated any
	if t.EstimatedHours != nil {
		estimated = t.EstimatedHours.String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks
			(id, reception_date, estimated_hours, actual_hours, quantity, status, deliverable_count, has_deliverable_links)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			reception_date=excluded.reception_date, estimated_hours=excluded.estimated_hours,
			actual_hours=excluded.actual_hours, quantity=excluded.quantity,
			status=excluded.status, deliverable_count=excluded.deliverable_count,
			has_deliverable_links=excluded.has_deliverable_links`,
		string(t.ID), t.ReceptionDate.String(), estimated, t.ActualHours.String(),
		t.Quantity, string(t.Status), t.DeliverableCount, boolToInt(t.HasDeliverableLinks))
	return err
}

// Task returns the record, or nil when unknown.
func (s *Store) Task(ctx context.Context, id engine.TaskID) (*production.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, reception_date, estimated_hours, actual_hours, quantity, status,
		        deliverable_count, has_deliverable_links
		 FROM tasks WHERE id = ?`, string(id))

	var (
		t         production.Task
		reception string
		estimated sql.NullString
		actual    string
		links     int
	)
	if err := row.Scan(&t.ID, &reception, &estimated, &actual, &t.Quantity,
		&t.Status, &t.DeliverableCount, &links); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var err error
	if t.ReceptionDate, err = engine.ParseDate(reception); err != nil {
		return nil, err
	}
	if estimated.Valid {
		h, err := engine.ParseHours(estimated.String)
		if err != nil {
			return nil, err
		}
		t.EstimatedHours = &h
	}
	if t.ActualHours, err = engine.ParseHours(actual); err != nil {
		return nil, err
	}
	t.HasDeliverableLinks = links != 0
	return &t, nil
}

// UpdateTaskStatus writes the new status. The deliverable gate runs in
// domain code before this; status writes themselves are last-write-wins.
func (s *Store) UpdateTaskStatus(ctx context.Context, id engine.TaskID, status production.TaskStatus) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ?`, string(status), string(id))
	return err
}

// =============================================================================
// HELPERS
// =============================================================================

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func oneRowChanged(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
