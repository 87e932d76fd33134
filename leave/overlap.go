package leave

import "github.com/warp/production-engine/engine"

// =============================================================================
// OVERLAP DETECTION
// =============================================================================

// Overlaps reports whether two inclusive date ranges share at least one
// day. Adjacent ranges sharing a boundary day overlap: a leave ending
// March 15 conflicts with one starting March 15.
func Overlaps(a, b engine.DateRange) bool {
	return a.Start.BeforeOrEqual(b.End) && a.End.AfterOrEqual(b.Start)
}

// Conflicts returns the existing requests a candidate range collides
// with. Only pending and approved requests participate; refused and
// cancelled ones are excluded.
func Conflicts(candidate engine.DateRange, existing []*LeaveRequest) []*LeaveRequest {
	var hits []*LeaveRequest
	for _, r := range existing {
		if !r.Blocks() {
			continue
		}
		if Overlaps(candidate, r.Range()) {
			hits = append(hits, r)
		}
	}
	return hits
}

// HasConflict is the boolean form of Conflicts.
func HasConflict(candidate engine.DateRange, existing []*LeaveRequest) bool {
	return len(Conflicts(candidate, existing)) > 0
}
