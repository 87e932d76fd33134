/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  engine's value types from the external contract. Sentinel "absent"
  values (occupation rate over zero expected hours, undefined
  rendement) serialize as JSON null, never as 0.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// =============================================================================
// ERROR ENVELOPE
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// TIMESHEET
// =============================================================================

type TaskHoursDTO struct {
	TaskID string  `json:"task_id"`
	Hours  float64 `json:"hours"`
}

type DayCellDTO struct {
	Date     string         `json:"date"`
	Logged   float64        `json:"logged"`
	Expected float64        `json:"expected"`
	Status   string         `json:"status"`
	Tasks    []TaskHoursDTO `json:"tasks,omitempty"`
}

type WeekSummaryDTO struct {
	Year     int     `json:"year"`
	Week     int     `json:"week"`
	Logged   float64 `json:"logged"`
	Expected float64 `json:"expected"`
}

type TimesheetDTO struct {
	EmployeeID     string           `json:"employee_id"`
	From           string           `json:"from"`
	To             string           `json:"to"`
	Days           []DayCellDTO     `json:"days"`
	TotalLogged    float64          `json:"total_logged"`
	TotalExpected  float64          `json:"total_expected"`
	OccupationRate *int             `json:"occupation_rate"` // null when no expected hours
	WeekSummaries  []WeekSummaryDTO `json:"week_summaries,omitempty"`
}

type SaveEntryRequest struct {
	TaskID string  `json:"task_id"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
}

type EntryDTO struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	TaskID     string  `json:"task_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Validated  bool    `json:"validated"`
}

type BulkValidateRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

type BulkValidateResponse struct {
	Validated []string `json:"validated"`
	Skipped   []string `json:"skipped"`
}

// =============================================================================
// TEAM VIEW
// =============================================================================

type TeamMemberWeekDTO struct {
	EmployeeID      string   `json:"employee_id"`
	TotalLogged     float64  `json:"total_logged"`
	TotalExpected   float64  `json:"total_expected"`
	OccupationRate  *int     `json:"occupation_rate"`
	ValidatedCount  int      `json:"validated_count"`
	PendingCount    int      `json:"pending_count"`
	PendingEntryIDs []string `json:"pending_entry_ids"`
}

type TeamWeekDTO struct {
	WeekStart string              `json:"week_start"`
	WeekEnd   string              `json:"week_end"`
	Members   []TeamMemberWeekDTO `json:"members"`
}

// =============================================================================
// LEAVE
// =============================================================================

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type LeaveRequestDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	Days        int    `json:"days"`
	DecidedBy   string `json:"decided_by,omitempty"`
}

type LeaveDecisionRequest struct {
	ActorID string `json:"actor_id"`
}

type LeaveBalanceDTO struct {
	EmployeeID  string `json:"employee_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Year        int    `json:"year"`
	Allowance   int    `json:"allowance"`
	Consumed    int    `json:"consumed"`
	Remaining   int    `json:"remaining"`
}

// =============================================================================
// TASKS
// =============================================================================

type TaskMetricsDTO struct {
	TaskID string `json:"task_id"`
	// Rendement is null when undefined (no estimate or no actual hours).
	Rendement *float64 `json:"rendement"`
	// DelayDays is the reception-to-measurement business-day delay.
	DelayDays int    `json:"delay_days"`
	AsOf      string `json:"as_of"`
}

type TaskStatusRequest struct {
	Status string `json:"status"`
}

type TaskDTO struct {
	ID                  string   `json:"id"`
	ReceptionDate       string   `json:"reception_date"`
	EstimatedHours      *float64 `json:"estimated_hours"`
	ActualHours         float64  `json:"actual_hours"`
	Quantity            int      `json:"quantity"`
	Status              string   `json:"status"`
	DeliverableCount    int      `json:"deliverable_count"`
	HasDeliverableLinks bool     `json:"has_deliverable_links"`
}
