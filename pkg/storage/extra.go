package storage

import (
	"context"
)

// ListRecentChanges returns the newest catalog changes, most recent first.
func (d *DB) ListRecentChanges(ctx context.Context, limit int) ([]Change, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.sql.QueryContext(ctx, `SELECT occurred_at, code, change_type FROM catalog_changes ORDER BY occurred_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []Change
	for rows.Next() {
		var c Change
		if err := rows.Scan(&c.OccurredAt, &c.Code, &c.ChangeType); err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

// GetStats aggregates course and section counts per department.
func (d *DB) GetStats(ctx context.Context) ([]DeptStats, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT substr(c.code, 1, 4) AS dept,
		       COUNT(DISTINCT c.code),
		       COUNT(s.session_id)
		FROM courses c
		LEFT JOIN sections s ON s.course_code = c.code
		GROUP BY dept
		ORDER BY dept`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []DeptStats
	for rows.Next() {
		var s DeptStats
		if err := rows.Scan(&s.Department, &s.CourseCount, &s.SectionCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
