/*
ledger.go - Leave balance computation

BALANCE:
  remaining = allowance - sum(Days of approved requests for the leave
  type that start within the period). The raw number is reported even
  when negative - over-allocation is a fact the caller decides how to
  handle, not something the engine clamps or rejects.

  Pending requests do not consume balance; refused and cancelled
  requests never do. Days was frozen at request creation, so the sum is
  stable under later holiday-list changes.
*/
package leave

import "github.com/warp/production-engine/engine"

// BalanceSummary is the computed standing for one leave type over a
// period.
type BalanceSummary struct {
	LeaveTypeID LeaveTypeID
	Allowance   int
	Consumed    int
	Remaining   int
}

// Balance computes the remaining allowance. Requests are attributed to
// the period by their start date.
func Balance(lt LeaveType, period engine.DateRange, requests []*LeaveRequest) BalanceSummary {
	consumed := 0
	for _, r := range requests {
		if r.LeaveTypeID != lt.ID || r.Status != StatusApproved {
			continue
		}
		if !period.Contains(r.Start) {
			continue
		}
		consumed += r.Days
	}
	return BalanceSummary{
		LeaveTypeID: lt.ID,
		Allowance:   lt.AnnualAllowance,
		Consumed:    consumed,
		Remaining:   lt.AnnualAllowance - consumed,
	}
}
