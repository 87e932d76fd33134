package production

import "github.com/warp/production-engine/engine"

// =============================================================================
// TERMINAL-STATUS GATE
// =============================================================================

// TerminalStatuses is the set of statuses that require a deliverable
// to enter. Hosts with extra lifecycle states may extend it.
var TerminalStatuses = map[TaskStatus]bool{
	StatusDone:      true,
	StatusDelivered: true,
}

// CanTransition checks the deliverable gate for a status change,
// evaluated at the moment of the request. Transitions into any
// non-terminal status are always permitted.
func CanTransition(t *Task, next TaskStatus) error {
	if !TerminalStatuses[next] {
		return nil
	}
	if t.DeliverableCount > 0 || t.HasDeliverableLinks {
		return nil
	}
	return &engine.InvalidTransitionError{
		Entity: "task",
		From:   string(t.Status),
		To:     string(next),
		Reason: "terminal status requires at least one deliverable or deliverable links",
	}
}

// TransitionTo applies the status change after gating it.
func (t *Task) TransitionTo(next TaskStatus) error {
	if err := CanTransition(t, next); err != nil {
		return err
	}
	t.Status = next
	return nil
}
