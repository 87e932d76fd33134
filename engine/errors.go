/*
errors.go - Centralized error vocabulary for the engine

PURPOSE:
  Three error kinds cover the whole engine; everything else that looks
  like "no data" (zero denominator, null estimate, empty range) is a
  defined sentinel value, not an error, so UIs can render an absence
  without exception handling.

ERROR KINDS:
  1. InvalidTransition - a state machine was asked for a move its
     current state does not permit (leave approve/refuse/cancel off
     pending; task terminal status without a deliverable)
  2. Locked - an edit or delete hit a validated time entry
  3. Unresolved - a lookup has no answer (no work schedule for a
     contract type) and must not silently default to zero, because
     zero is a meaningful business value elsewhere

USAGE:
  Domain packages wrap the sentinels with structured context:

    if engine.IsLocked(err) {
        // 409 to the client
    }

SEE ALSO:
  - timesheet/lock.go: produces Locked
  - leave/request.go, production/status.go: produce InvalidTransition
  - schedule.go: produces Unresolved
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTransition is returned when a state-machine operation is
	// requested from a state that does not permit it.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrLocked is returned when an edit or delete targets a validated
	// time entry. It is an explicit rejection, never a silent no-op.
	ErrLocked = errors.New("entry is validated and locked")

	// ErrUnresolved is returned when a required lookup has no answer.
	// Callers must treat it as "unknown", never as zero.
	ErrUnresolved = errors.New("lookup unresolved")

	// ErrInvalidRange is returned for malformed input ranges
	// (end before start on creation, hours outside [0, 24]).
	ErrInvalidRange = errors.New("invalid range")
)

// =============================================================================
// STRUCTURED ERRORS - Carry context, unwrap to the sentinels
// =============================================================================

// InvalidTransitionError names the move that was refused.
type InvalidTransitionError struct {
	Entity string // "leave request", "task"
	From   string
	To     string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: cannot move from %q to %q: %s", e.Entity, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("%s: cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// LockedError identifies the validated entry that rejected a write.
type LockedError struct {
	EntryID string
	Op      string // "edit", "delete", "save"
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("time entry %s is validated: %s rejected", e.EntryID, e.Op)
}

func (e *LockedError) Unwrap() error { return ErrLocked }

// UnresolvedScheduleError reports a contract type with no configured
// weekly template.
type UnresolvedScheduleError struct {
	ContractType ContractType
}

func (e *UnresolvedScheduleError) Error() string {
	return fmt.Sprintf("no work schedule configured for contract type %q", e.ContractType)
}

func (e *UnresolvedScheduleError) Unwrap() error { return ErrUnresolved }

// RangeError reports a malformed input range.
type RangeError struct {
	What   string
	Detail string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.What, e.Detail)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// =============================================================================
// ERROR HELPERS
// =============================================================================

func IsInvalidTransition(err error) bool { return errors.Is(err, ErrInvalidTransition) }
func IsLocked(err error) bool            { return errors.Is(err, ErrLocked) }
func IsUnresolved(err error) bool        { return errors.Is(err, ErrUnresolved) }
func IsInvalidRange(err error) bool      { return errors.Is(err, ErrInvalidRange) }
