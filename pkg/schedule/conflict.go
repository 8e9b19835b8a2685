package schedule

import "strings"

// Selected is one section in the user's cart, flattened for conflict
// detection and calendar projection. SessionID is only unique within its
// course, so CourseCode rides along.
type Selected struct {
	CourseCode    string  `json:"course_code"`
	SessionID     string  `json:"session_id"`
	Days          string  `json:"days"`
	Time          string  `json:"time"`
	Term          string  `json:"term"`
	Price         float64 `json:"price"`
	IsConflicting bool    `json:"is_conflicting"`
}

// HasConflict reports whether two sections share a meeting day letter and
// their time ranges overlap. Either section missing days or a parsable time
// means no conflict can be established, so none is reported. Overlap is
// half-open: ranges that merely touch do not conflict.
func HasConflict(a, b Selected) bool {
	if a.Days == "" || b.Days == "" || a.Time == "" || b.Time == "" {
		return false
	}
	if !strings.ContainsAny(a.Days, b.Days) {
		return false
	}
	ra := ParseTimeRange(a.Time)
	rb := ParseTimeRange(b.Time)
	return ra.Start < rb.End && rb.Start < ra.End
}

// MarkConflicts flags every section that conflicts with at least one other
// selected section, checking all pairs. Conflicts are symmetric; both members
// of a conflicting pair get flagged. The input is returned as a new slice
// with flags set.
func MarkConflicts(sections []Selected) []Selected {
	out := make([]Selected, len(sections))
	copy(out, sections)
	for i := range out {
		out[i].IsConflicting = false
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if HasConflict(out[i], out[j]) {
				out[i].IsConflicting = true
				out[j].IsConflicting = true
			}
		}
	}
	return out
}
