/*
request.go - Leave request creation and state machine

STATE MACHINE:

  pending ──▶ approved    (approver)
     │
     ├──────▶ refused     (approver)
     │
     └──────▶ cancelled   (requesting employee only)

  All three destinations are terminal. Approve/refuse/cancel off
  pending fail with InvalidTransition. Cancel carries an authorization
  constraint on top of the state constraint: only the requesting
  employee may cancel, not an arbitrary approver.

DAYS FREEZING:
  Days is computed at creation with the business calendar in inclusive
  mode (both ends count when they are business days), uniformly over
  weekends and holidays, independent of the employee's personal work
  schedule. No transition ever recomputes it.
*/
package leave

import (
	"time"

	"github.com/warp/production-engine/engine"
)

// =============================================================================
// CREATION
// =============================================================================

// NewRequest creates a pending request with Days frozen. end before
// start is rejected; a same-day request is fine.
func NewRequest(id RequestID, employee engine.EmployeeID, leaveType LeaveTypeID, start, end engine.Date, holidays engine.HolidaySet, now time.Time) (*LeaveRequest, error) {
	if end.Before(start) {
		return nil, &engine.RangeError{
			What:   "leave period",
			Detail: "end date " + end.String() + " is before start date " + start.String(),
		}
	}
	return &LeaveRequest{
		ID:          id,
		EmployeeID:  employee,
		LeaveTypeID: leaveType,
		Start:       start,
		End:         end,
		Status:      StatusPending,
		Days:        engine.CountBusinessDays(start, end, holidays, engine.CountInclusive),
		CreatedAt:   now,
	}, nil
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Approve moves pending -> approved.
func (r *LeaveRequest) Approve(approver string, at time.Time) error {
	if err := r.requirePending(StatusApproved, ""); err != nil {
		return err
	}
	r.Status = StatusApproved
	r.DecidedBy = approver
	r.DecidedAt = &at
	return nil
}

// Refuse moves pending -> refused.
func (r *LeaveRequest) Refuse(approver string, at time.Time) error {
	if err := r.requirePending(StatusRefused, ""); err != nil {
		return err
	}
	r.Status = StatusRefused
	r.DecidedBy = approver
	r.DecidedAt = &at
	return nil
}

// Cancel moves pending -> cancelled, permitted only to the requesting
// employee.
func (r *LeaveRequest) Cancel(actor engine.EmployeeID, at time.Time) error {
	if actor != r.EmployeeID {
		return &engine.InvalidTransitionError{
			Entity: "leave request",
			From:   string(r.Status),
			To:     string(StatusCancelled),
			Reason: "only the requesting employee may cancel",
		}
	}
	if err := r.requirePending(StatusCancelled, ""); err != nil {
		return err
	}
	r.Status = StatusCancelled
	r.DecidedBy = string(actor)
	r.DecidedAt = &at
	return nil
}

func (r *LeaveRequest) requirePending(to Status, reason string) error {
	if r.Status != StatusPending {
		return &engine.InvalidTransitionError{
			Entity: "leave request",
			From:   string(r.Status),
			To:     string(to),
			Reason: reason,
		}
	}
	return nil
}
