package storage

import "time"

// Change captures one catalog difference observed during a reload, for
// auditing or printing.
type Change struct {
	OccurredAt time.Time `json:"occurred_at"`
	Code       string    `json:"code"`
	ChangeType string    `json:"change_type"` // added | updated | removed
}

// DeptStats aggregates one department's share of the stored catalog.
type DeptStats struct {
	Department   string `json:"department"`
	CourseCount  int    `json:"course_count"`
	SectionCount int    `json:"section_count"`
}
