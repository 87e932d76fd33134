/*
handlers.go - HTTP API handlers for the production engine host

PURPOSE:
  Exposes the engine's computed values over REST. Handlers gather
  plain facts from the store (entries, schedules, holidays, leaves,
  tasks), call into the pure engine packages, and serialize the
  results. No business rule lives here.

ENDPOINTS:
  Timesheets:
    GET    /api/employees/{id}/timesheet        Range grid (?from&to&by_task)
    GET    /api/employees/{id}/timesheet/month  Month grid + week summaries
    POST   /api/employees/{id}/entries          Save a day cell
    DELETE /api/entries/{id}                    Delete a pending entry
    POST   /api/entries/validate                Bulk validate

  Teams:
    GET    /api/teams/{managerID}/week          Per-subordinate weekly rollup

  Leave:
    GET    /api/employees/{id}/leaves           List requests
    POST   /api/employees/{id}/leaves           Create request
    GET    /api/employees/{id}/leaves/balance   Balance for a type/year
    POST   /api/leaves/{id}/approve|refuse|cancel

  Tasks:
    GET    /api/tasks/{id}                      Task record
    GET    /api/tasks/{id}/metrics              Rendement + delay
    POST   /api/tasks/{id}/status               Gated status change

ERROR HANDLING:
  Engine sentinels map to HTTP status:
    Locked             -> 409
    InvalidTransition  -> 409
    Unresolved         -> 422
    InvalidRange       -> 400
  Missing records are 404; malformed input is 400.

SEE ALSO:
  - dto.go: Request/response data structures
  - seed.go: Demo dataset loader
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/leave"
	"github.com/warp/production-engine/production"
	"github.com/warp/production-engine/store/sqlite"
	"github.com/warp/production-engine/timesheet"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Log   *logrus.Logger
}

// NewHandler creates a handler over the given store.
func NewHandler(store *sqlite.Store, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{Store: store, Log: log}
}

// =============================================================================
// TIMESHEET HANDLERS
// =============================================================================

// GetTimesheet returns the day-by-day grid for an arbitrary range.
// GET /api/employees/{id}/timesheet?from=YYYY-MM-DD&to=YYYY-MM-DD&by_task=1
func (h *Handler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	from, err := engine.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return
	}
	to, err := engine.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
		return
	}
	byTask := r.URL.Query().Get("by_task") == "1"

	grid, err := h.buildGrid(r, employeeID, engine.DateRange{Start: from, End: to}, byTask)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimesheetDTO(grid, false))
}

// GetMonthTimesheet returns the month grid with ISO-week summaries.
// GET /api/employees/{id}/timesheet/month?year=2025&month=3
func (h *Handler) GetMonthTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	grid, err := h.buildGrid(r, employeeID, engine.MonthRange(year, time.Month(month)), true)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimesheetDTO(grid, true))
}

// SaveEntry applies a day-cell save (create / update / delete-on-zero).
// POST /api/employees/{id}/entries
func (h *Handler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	var req SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	entry, err := timesheet.SaveCell(r.Context(), h.Store, employeeID,
		engine.TaskID(req.TaskID), date, engine.HoursFromFloat(req.Hours))
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if entry == nil {
		// The save cleared (or never populated) the cell.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTO(entry))
}

// DeleteEntry deletes a pending entry.
// DELETE /api/entries/{id}
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := timesheet.EntryID(chi.URLParam(r, "id"))
	if err := timesheet.DeleteEntry(r.Context(), h.Store, id); err != nil {
		h.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkValidate validates the listed entries, reporting what changed.
// POST /api/entries/validate
func (h *Handler) BulkValidate(w http.ResponseWriter, r *http.Request) {
	var req BulkValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ids := make([]timesheet.EntryID, len(req.EntryIDs))
	for i, id := range req.EntryIDs {
		ids[i] = timesheet.EntryID(id)
	}

	result, err := timesheet.BulkValidate(r.Context(), h.Store, ids)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Bulk validation failed", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"validated": len(result.Validated),
		"skipped":   len(result.Skipped),
	}).Info("bulk validation applied")

	writeJSON(w, http.StatusOK, BulkValidateResponse{
		Validated: entryIDStrings(result.Validated),
		Skipped:   entryIDStrings(result.Skipped),
	})
}

// buildGrid gathers the grid input facts for one employee.
func (h *Handler) buildGrid(r *http.Request, employeeID engine.EmployeeID, dateRange engine.DateRange, byTask bool) (*timesheet.Grid, error) {
	ctx := r.Context()

	emp, err := h.Store.Employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, errNotFound("employee")
	}

	schedules, err := h.Store.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	schedule, err := schedules.Resolve(emp.ContractType)
	if err != nil {
		return nil, err
	}

	holidays, err := h.Store.Holidays(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := h.Store.EntriesByEmployee(ctx, employeeID, dateRange)
	if err != nil {
		return nil, err
	}
	leaves, err := h.approvedLeaveRanges(r, employeeID)
	if err != nil {
		return nil, err
	}

	return timesheet.BuildGrid(timesheet.GridInput{
		EmployeeID: employeeID,
		Range:      dateRange,
		Entries:    entries,
		Schedule:   schedule,
		Holidays:   holidays,
		Leaves:     leaves,
		ByTask:     byTask,
	}), nil
}

func (h *Handler) approvedLeaveRanges(r *http.Request, employeeID engine.EmployeeID) ([]engine.DateRange, error) {
	requests, err := h.Store.LeaveRequestsByEmployee(r.Context(), employeeID)
	if err != nil {
		return nil, err
	}
	var ranges []engine.DateRange
	for _, lr := range requests {
		if lr.Status == leave.StatusApproved {
			ranges = append(ranges, lr.Range())
		}
	}
	return ranges, nil
}

// =============================================================================
// TEAM HANDLERS
// =============================================================================

// GetTeamWeek aggregates one row per subordinate for the week.
// GET /api/teams/{managerID}/week?start=YYYY-MM-DD
func (h *Handler) GetTeamWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	managerID := engine.EmployeeID(chi.URLParam(r, "managerID"))

	start, err := engine.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date (use YYYY-MM-DD)", err)
		return
	}
	week := engine.WeekRange(start)

	subordinates, err := h.Store.Subordinates(ctx, managerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load team", err)
		return
	}
	schedules, err := h.Store.Schedules(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedules", err)
		return
	}
	holidays, err := h.Store.Holidays(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	var members []timesheet.TeamMemberInput
	for _, sub := range subordinates {
		schedule, err := schedules.Resolve(sub.ContractType)
		if err != nil {
			h.writeEngineError(w, err)
			return
		}
		entries, err := h.Store.EntriesByEmployee(ctx, sub.ID, week)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load entries", err)
			return
		}
		leaves, err := h.approvedLeaveRanges(r, sub.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load leaves", err)
			return
		}
		members = append(members, timesheet.TeamMemberInput{
			EmployeeID: sub.ID,
			Entries:    entries,
			Schedule:   schedule,
			Leaves:     leaves,
		})
	}

	rows := timesheet.TeamWeek(week, holidays, members)
	dto := TeamWeekDTO{
		WeekStart: week.Start.String(),
		WeekEnd:   week.End.String(),
		Members:   make([]TeamMemberWeekDTO, 0, len(rows)),
	}
	for _, row := range rows {
		m := TeamMemberWeekDTO{
			EmployeeID:      string(row.EmployeeID),
			TotalLogged:     row.TotalLogged.Float64(),
			TotalExpected:   row.TotalExpected.Float64(),
			ValidatedCount:  row.ValidatedCount,
			PendingCount:    row.PendingCount,
			PendingEntryIDs: entryIDStrings(row.PendingEntryIDs),
		}
		if row.RateKnown {
			rate := row.OccupationRate
			m.OccupationRate = &rate
		}
		dto.Members = append(dto.Members, m)
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// ListLeaves returns all of an employee's requests.
// GET /api/employees/{id}/leaves
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))
	requests, err := h.Store.LeaveRequestsByEmployee(r.Context(), employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave requests", err)
		return
	}
	dtos := make([]LeaveRequestDTO, 0, len(requests))
	for _, lr := range requests {
		dtos = append(dtos, toLeaveRequestDTO(lr))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateLeave creates a pending request, freezing its business-day
// count, after checking for overlaps with the employee's pending and
// approved requests.
// POST /api/employees/{id}/leaves
func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	var req CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	start, err := engine.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date (use YYYY-MM-DD)", err)
		return
	}
	end, err := engine.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date (use YYYY-MM-DD)", err)
		return
	}

	leaveType, err := h.Store.LeaveType(ctx, leave.LeaveTypeID(req.LeaveTypeID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave type", err)
		return
	}
	if leaveType == nil {
		writeError(w, http.StatusNotFound, "Leave type not found", nil)
		return
	}

	existing, err := h.Store.LeaveRequestsByEmployee(ctx, employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave requests", err)
		return
	}
	candidate := engine.DateRange{Start: start, End: end}
	if leave.HasConflict(candidate, existing) {
		writeError(w, http.StatusConflict, "Leave period overlaps an existing pending or approved request", nil)
		return
	}

	holidays, err := h.Store.Holidays(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	request, err := leave.NewRequest(newRequestID(), employeeID, leaveType.ID, start, end, holidays, time.Now())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if err := h.Store.InsertLeaveRequest(ctx, request); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save leave request", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"employee": employeeID,
		"request":  request.ID,
		"days":     request.Days,
	}).Info("leave request created")

	writeJSON(w, http.StatusCreated, toLeaveRequestDTO(request))
}

// ApproveLeave moves a request pending -> approved.
// POST /api/leaves/{id}/approve
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, leave.StatusApproved)
}

// RefuseLeave moves a request pending -> refused.
// POST /api/leaves/{id}/refuse
func (h *Handler) RefuseLeave(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, leave.StatusRefused)
}

// CancelLeave moves a request pending -> cancelled; the actor must be
// the requesting employee.
// POST /api/leaves/{id}/cancel
func (h *Handler) CancelLeave(w http.ResponseWriter, r *http.Request) {
	h.decideLeave(w, r, leave.StatusCancelled)
}

func (h *Handler) decideLeave(w http.ResponseWriter, r *http.Request, to leave.Status) {
	ctx := r.Context()
	id := leave.RequestID(chi.URLParam(r, "id"))

	var req LeaveDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	request, err := h.Store.LeaveRequest(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave request", err)
		return
	}
	if request == nil {
		writeError(w, http.StatusNotFound, "Leave request not found", nil)
		return
	}

	now := time.Now()
	switch to {
	case leave.StatusApproved:
		err = request.Approve(req.ActorID, now)
	case leave.StatusRefused:
		err = request.Refuse(req.ActorID, now)
	case leave.StatusCancelled:
		err = request.Cancel(engine.EmployeeID(req.ActorID), now)
	}
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	changed, err := h.Store.UpdateLeaveStatusIfPending(ctx, id, to, req.ActorID, now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save transition", err)
		return
	}
	if !changed {
		// A concurrent decision won; report the transition as invalid.
		writeError(w, http.StatusConflict, "Leave request was already decided", engine.ErrInvalidTransition)
		return
	}
	writeJSON(w, http.StatusOK, toLeaveRequestDTO(request))
}

// GetLeaveBalance computes the raw remaining allowance.
// GET /api/employees/{id}/leaves/balance?type=cp&year=2025
func (h *Handler) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	leaveType, err := h.Store.LeaveType(ctx, leave.LeaveTypeID(r.URL.Query().Get("type")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave type", err)
		return
	}
	if leaveType == nil {
		writeError(w, http.StatusNotFound, "Leave type not found", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	requests, err := h.Store.LeaveRequestsByEmployee(ctx, employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leave requests", err)
		return
	}

	summary := leave.Balance(*leaveType, engine.YearRange(year), requests)
	writeJSON(w, http.StatusOK, LeaveBalanceDTO{
		EmployeeID:  string(employeeID),
		LeaveTypeID: string(summary.LeaveTypeID),
		Year:        year,
		Allowance:   summary.Allowance,
		Consumed:    summary.Consumed,
		Remaining:   summary.Remaining,
	})
}

// =============================================================================
// TASK HANDLERS
// =============================================================================

// GetTask returns the task record.
// GET /api/tasks/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadTask(w, r)
	if task == nil || err != nil {
		return
	}
	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

// GetTaskMetrics returns rendement and the business-day delay.
// GET /api/tasks/{id}/metrics?as_of=YYYY-MM-DD (defaults to today)
func (h *Handler) GetTaskMetrics(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadTask(w, r)
	if task == nil || err != nil {
		return
	}

	asOf := engine.Today()
	if s := r.URL.Query().Get("as_of"); s != "" {
		parsed, err := engine.ParseDate(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
			return
		}
		asOf = parsed
	}

	holidays, err := h.Store.Holidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	dto := TaskMetricsDTO{
		TaskID:    string(task.ID),
		DelayDays: task.DelayAsOf(asOf, holidays),
		AsOf:      asOf.String(),
	}
	if rendement, ok := task.Rendement(); ok {
		v, _ := rendement.Float64()
		dto.Rendement = &v
	}
	writeJSON(w, http.StatusOK, dto)
}

// UpdateTaskStatus applies a gated status change.
// POST /api/tasks/{id}/status
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadTask(w, r)
	if task == nil || err != nil {
		return
	}

	var req TaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := task.TransitionTo(production.TaskStatus(req.Status)); err != nil {
		h.writeEngineError(w, err)
		return
	}
	if err := h.Store.UpdateTaskStatus(r.Context(), task.ID, task.Status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save status", err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (h *Handler) loadTask(w http.ResponseWriter, r *http.Request) (*production.Task, error) {
	id := engine.TaskID(chi.URLParam(r, "id"))
	task, err := h.Store.Task(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load task", err)
		return nil, err
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "Task not found", nil)
		return nil, nil
	}
	return task, nil
}

// =============================================================================
// ADMIN
// =============================================================================

// LoadDemo resets the database and loads the demo dataset.
// POST /api/admin/demo
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset", err)
		return
	}
	if err := Seed(r.Context(), h.Store); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed demo data", err)
		return
	}
	h.Log.Info("demo dataset loaded")
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine sentinels onto HTTP statuses.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	var nf *notFoundError
	switch {
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error(), nil)
	case engine.IsLocked(err):
		writeError(w, http.StatusConflict, "Entry is validated and locked", err)
	case engine.IsInvalidTransition(err):
		writeError(w, http.StatusConflict, "Transition not permitted", err)
	case engine.IsUnresolved(err):
		writeError(w, http.StatusUnprocessableEntity, "Work schedule unresolved for contract type", err)
	case engine.IsInvalidRange(err):
		writeError(w, http.StatusBadRequest, "Invalid range", err)
	case errors.Is(err, timesheet.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, "Time entry not found", nil)
	default:
		h.Log.WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

type notFoundError struct{ what string }

func (e *notFoundError) Error() string { return e.what + " not found" }

func errNotFound(what string) error { return &notFoundError{what: what} }

func toTimesheetDTO(grid *timesheet.Grid, withWeeks bool) TimesheetDTO {
	dto := TimesheetDTO{
		EmployeeID:    string(grid.EmployeeID),
		From:          grid.Range.Start.String(),
		To:            grid.Range.End.String(),
		Days:          make([]DayCellDTO, 0, len(grid.Days)),
		TotalLogged:   grid.TotalLogged.Float64(),
		TotalExpected: grid.TotalExpected.Float64(),
	}
	if rate, ok := grid.OccupationRate(); ok {
		dto.OccupationRate = &rate
	}
	for _, cell := range grid.Days {
		c := DayCellDTO{
			Date:     cell.Date.String(),
			Logged:   cell.Logged.Float64(),
			Expected: cell.Expected.Float64(),
			Status:   string(cell.Status),
		}
		for _, th := range cell.Tasks {
			c.Tasks = append(c.Tasks, TaskHoursDTO{TaskID: string(th.TaskID), Hours: th.Hours.Float64()})
		}
		dto.Days = append(dto.Days, c)
	}
	if withWeeks {
		for _, ws := range grid.WeekSummaries() {
			dto.WeekSummaries = append(dto.WeekSummaries, WeekSummaryDTO{
				Year:     ws.Week.Year,
				Week:     ws.Week.Week,
				Logged:   ws.TotalLogged.Float64(),
				Expected: ws.TotalExpected.Float64(),
			})
		}
	}
	return dto
}

func toEntryDTO(e *timesheet.TimeEntry) EntryDTO {
	return EntryDTO{
		ID:         string(e.ID),
		EmployeeID: string(e.EmployeeID),
		TaskID:     string(e.TaskID),
		Date:       e.Date.String(),
		Hours:      e.Hours.Float64(),
		Validated:  e.Validated,
	}
}

func toLeaveRequestDTO(r *leave.LeaveRequest) LeaveRequestDTO {
	return LeaveRequestDTO{
		ID:          string(r.ID),
		EmployeeID:  string(r.EmployeeID),
		LeaveTypeID: string(r.LeaveTypeID),
		StartDate:   r.Start.String(),
		EndDate:     r.End.String(),
		Status:      string(r.Status),
		Days:        r.Days,
		DecidedBy:   r.DecidedBy,
	}
}

func toTaskDTO(t *production.Task) TaskDTO {
	dto := TaskDTO{
		ID:                  string(t.ID),
		ReceptionDate:       t.ReceptionDate.String(),
		ActualHours:         t.ActualHours.Float64(),
		Quantity:            t.Quantity,
		Status:              string(t.Status),
		DeliverableCount:    t.DeliverableCount,
		HasDeliverableLinks: t.HasDeliverableLinks,
	}
	if t.EstimatedHours != nil {
		v := t.EstimatedHours.Float64()
		dto.EstimatedHours = &v
	}
	return dto
}

func entryIDStrings(ids []timesheet.EntryID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func newRequestID() leave.RequestID {
	return leave.RequestID(fmt.Sprintf("lr-%d", time.Now().UnixNano()))
}
