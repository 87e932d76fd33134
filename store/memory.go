// Package store provides an in-memory implementation of the
// persistence contracts, for tests and development.
package store

import (
	"context"
	"sync"

	"github.com/warp/production-engine/engine"
	"github.com/warp/production-engine/timesheet"
)

// =============================================================================
// MEMORY STORE - Mutex-guarded maps; conditional semantics preserved
// =============================================================================

// Memory implements timesheet.EntryStore. All state-dependent writes
// hold the lock across the check and the write, which is exactly the
// serialization the conditional-update contract asks for.
type Memory struct {
	mu      sync.RWMutex
	entries map[timesheet.EntryID]*timesheet.TimeEntry
	cells   map[cellKey]timesheet.EntryID
}

type cellKey struct {
	Employee engine.EmployeeID
	Task     engine.TaskID
	Date     string
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[timesheet.EntryID]*timesheet.TimeEntry),
		cells:   make(map[cellKey]timesheet.EntryID),
	}
}

var _ timesheet.EntryStore = (*Memory)(nil)

func (m *Memory) Entry(_ context.Context, id timesheet.EntryID) (*timesheet.TimeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, timesheet.ErrEntryNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *Memory) FindCell(_ context.Context, employee engine.EmployeeID, task engine.TaskID, date engine.Date) (*timesheet.TimeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.cells[cellKey{Employee: employee, Task: task, Date: date.String()}]
	if !ok {
		return nil, nil
	}
	cp := *m.entries[id]
	return &cp, nil
}

func (m *Memory) InsertEntry(_ context.Context, e *timesheet.TimeEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.entries[e.ID] = &cp
	m.cells[cellKey{Employee: e.EmployeeID, Task: e.TaskID, Date: e.Date.String()}] = e.ID
	return nil
}

func (m *Memory) UpdateHoursIfPending(_ context.Context, id timesheet.EntryID, hours engine.Hours) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.Validated {
		return false, nil
	}
	e.Hours = hours
	return true, nil
}

func (m *Memory) DeleteIfPending(_ context.Context, id timesheet.EntryID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.Validated {
		return false, nil
	}
	delete(m.entries, id)
	delete(m.cells, cellKey{Employee: e.EmployeeID, Task: e.TaskID, Date: e.Date.String()})
	return true, nil
}

func (m *Memory) ValidateIfPending(_ context.Context, id timesheet.EntryID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok || e.Validated {
		return false, nil
	}
	e.Validated = true
	return true, nil
}

// EntriesByEmployee returns the employee's entries within the range,
// for building grids in tests and dev tools.
func (m *Memory) EntriesByEmployee(_ context.Context, employee engine.EmployeeID, r engine.DateRange) ([]timesheet.TimeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []timesheet.TimeEntry
	for _, e := range m.entries {
		if e.EmployeeID == employee && r.Contains(e.Date) {
			out = append(out, *e)
		}
	}
	return out, nil
}
