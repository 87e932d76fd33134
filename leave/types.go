/*
Package leave implements the leave ledger: balances, overlap detection,
and the request state machine.

PURPOSE:
  A leave request is created pending with its business-day count frozen
  at creation, then moves to exactly one of approved, refused or
  cancelled - all terminal. Balances are allowance minus the days of
  approved requests, reported raw (negative means over-allocated; any
  clamping or denial policy belongs to the caller). Requests are never
  hard-deleted; cancellation is the soft lifecycle.

KEY CONCEPTS IN THIS FILE (types.go):
  - LeaveType: static reference data (name, annual allowance, carry-over)
  - LeaveRequest: the stateful record; Days is computed once and never
    recomputed, so historical balances stay accurate even if holiday
    lists change later

SEE ALSO:
  - request.go: creation and the state machine
  - ledger.go: balance computation
  - overlap.go: range conflict detection
*/
package leave

import (
	"time"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// REFERENCE DATA
// =============================================================================

type LeaveTypeID string

// LeaveType is static reference data owned by configuration.
type LeaveType struct {
	ID              LeaveTypeID
	Name            string
	AnnualAllowance int
	CarryOver       bool
}

// =============================================================================
// LEAVE REQUEST
// =============================================================================

type RequestID string

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRefused   Status = "refused"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no transition leaves the status.
func (s Status) Terminal() bool { return s != StatusPending }

// LeaveRequest is an employee's request for a date range of leave.
// Days is the inclusive business-day count frozen at creation.
type LeaveRequest struct {
	ID          RequestID
	EmployeeID  engine.EmployeeID
	LeaveTypeID LeaveTypeID
	Start       engine.Date
	End         engine.Date
	Status      Status
	Days        int

	DecidedBy string
	DecidedAt *time.Time
	CreatedAt time.Time
}

// Range returns the request's inclusive date range.
func (r *LeaveRequest) Range() engine.DateRange {
	return engine.DateRange{Start: r.Start, End: r.End}
}

// Blocks reports whether the request participates in overlap checks
// against new requests: pending and approved do, refused and cancelled
// are out of the way.
func (r *LeaveRequest) Blocks() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}
