/*
lock.go - Entry validation lock and save-cell semantics

PURPOSE:
  A time entry moves pending -> validated exactly once; validated is
  terminal for normal flows (an administrative unlock lives outside
  this engine). Edits and deletes against a validated entry fail with
  a Locked error - never a silent no-op.

CONDITIONAL UPDATES:
  The EntryStore contract is that every state-dependent write is a
  conditional update keyed on the current state (is_validated = false),
  reporting whether a row actually changed. That serializes the
  read-check-write of the lock flag per entry: an edit racing a
  validation either lands first or is rejected as Locked, and can never
  silently apply to an entry that ends up validated.

BULK VALIDATION:
  Deliberately N independent conditional updates, NOT one multi-row
  transaction: an identifier that is missing or already validated is
  skipped, not a failure of the batch, so one stale row never blocks
  the rest. Re-running the same batch is idempotent.

SAVE-CELL:
  One handler for a day cell save:
    entry exists, value 0   -> delete
    entry exists, non-zero  -> update hours
    no entry, non-zero      -> create
    no entry, value 0       -> nothing
  Any save against a validated cell is rejected regardless of value.

SEE ALSO:
  - store/memory.go, store/sqlite: EntryStore implementations
*/
package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/warp/production-engine/engine"
)

// ErrEntryNotFound is returned when an entry ID has no record.
var ErrEntryNotFound = errors.New("time entry not found")

// =============================================================================
// ENTRY STORE - Conditional-update persistence contract
// =============================================================================

// EntryStore is implemented by the persistence collaborator. The
// *IfPending methods must atomically check the validated flag and
// apply the write, returning false (without error) when the entry is
// missing or already validated.
type EntryStore interface {
	// Entry returns the entry or ErrEntryNotFound.
	Entry(ctx context.Context, id EntryID) (*TimeEntry, error)

	// FindCell returns the entry for (employee, task, date), or nil
	// when the cell is empty.
	FindCell(ctx context.Context, employee engine.EmployeeID, task engine.TaskID, date engine.Date) (*TimeEntry, error)

	// InsertEntry persists a new pending entry.
	InsertEntry(ctx context.Context, e *TimeEntry) error

	// UpdateHoursIfPending sets hours iff the entry exists and is not
	// validated. Returns whether a row changed.
	UpdateHoursIfPending(ctx context.Context, id EntryID, hours engine.Hours) (bool, error)

	// DeleteIfPending deletes iff the entry exists and is not
	// validated. Returns whether a row changed.
	DeleteIfPending(ctx context.Context, id EntryID) (bool, error)

	// ValidateIfPending flips pending -> validated. Returns whether a
	// row changed (false for missing or already-validated entries).
	ValidateIfPending(ctx context.Context, id EntryID) (bool, error)
}

// =============================================================================
// SAVE CELL - Create-or-update-on-save for one day cell
// =============================================================================

// SaveCell applies a day-cell save. Returns the resulting entry, or
// nil when the save cleared the cell. A validated cell rejects the
// save with a Locked error.
func SaveCell(ctx context.Context, store EntryStore, employee engine.EmployeeID, task engine.TaskID, date engine.Date, hours engine.Hours) (*TimeEntry, error) {
	if hours.IsNegative() || hours.GreaterThan(engine.HoursFromInt(engine.MaxEntryHours)) {
		return nil, &engine.RangeError{
			What:   "entry hours",
			Detail: fmt.Sprintf("%s is outside [0, %d]", hours, engine.MaxEntryHours),
		}
	}

	existing, err := store.FindCell(ctx, employee, task, date)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if hours.IsZero() {
			return nil, nil
		}
		entry, err := NewEntry(newEntryID(), employee, task, date, hours)
		if err != nil {
			return nil, err
		}
		if err := store.InsertEntry(ctx, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}

	if existing.Validated {
		return nil, &LockedError{EntryID: string(existing.ID), Op: "save"}
	}

	if hours.IsZero() {
		changed, err := store.DeleteIfPending(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		if !changed {
			// The entry was validated between the read and the write.
			return nil, &LockedError{EntryID: string(existing.ID), Op: "save"}
		}
		return nil, nil
	}

	changed, err := store.UpdateHoursIfPending(ctx, existing.ID, hours)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, &LockedError{EntryID: string(existing.ID), Op: "save"}
	}
	existing.Hours = hours
	return existing, nil
}

// DeleteEntry removes a pending entry; a validated entry rejects with
// a Locked error, a missing one with ErrEntryNotFound.
func DeleteEntry(ctx context.Context, store EntryStore, id EntryID) error {
	changed, err := store.DeleteIfPending(ctx, id)
	if err != nil {
		return err
	}
	if changed {
		return nil
	}
	// Distinguish locked from missing for the caller.
	if _, err := store.Entry(ctx, id); err != nil {
		return err
	}
	return &LockedError{EntryID: string(id), Op: "delete"}
}

// =============================================================================
// BULK VALIDATE
// =============================================================================

// BulkValidateResult reports which identifiers actually changed.
type BulkValidateResult struct {
	Validated []EntryID
	Skipped   []EntryID
}

// BulkValidate transitions each listed entry pending -> validated as
// an independent conditional update. Missing and already-validated
// identifiers are skipped, never batch failures; re-invoking with the
// same list changes nothing.
func BulkValidate(ctx context.Context, store EntryStore, ids []EntryID) (BulkValidateResult, error) {
	var result BulkValidateResult
	for _, id := range ids {
		changed, err := store.ValidateIfPending(ctx, id)
		if err != nil {
			return result, err
		}
		if changed {
			result.Validated = append(result.Validated, id)
		} else {
			result.Skipped = append(result.Skipped, id)
		}
	}
	return result, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// LockedError aliases the engine type so callers matching on the
// timesheet package find it where the lock lives.
type LockedError = engine.LockedError

func newEntryID() EntryID {
	return EntryID(fmt.Sprintf("te-%d", time.Now().UnixNano()))
}
