package storage

import (
	"context"
	"fmt"

	"github.com/coursedeck/coursedeck/pkg/schedule"
)

// ToggleSelection adds a section to the cart, or removes it when already
// there. It reports whether the section is selected after the call.
func (d *DB) ToggleSelection(ctx context.Context, courseCode, sessionID string) (bool, error) {
	var exists int
	err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM sections WHERE course_code = ? AND session_id = ?`, courseCode, sessionID).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, fmt.Errorf("no such section: %s %s", courseCode, sessionID)
	}

	res, err := d.sql.ExecContext(ctx, `DELETE FROM selections WHERE course_code = ? AND session_id = ?`, courseCode, sessionID)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = d.sql.ExecContext(ctx, `INSERT INTO selections(course_code, session_id) VALUES(?,?)`, courseCode, sessionID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// SelectedSections returns the cart contents flattened for the conflict
// detector, in selection order. Conflict flags are not set here; callers run
// schedule.MarkConflicts on the result.
func (d *DB) SelectedSections(ctx context.Context) ([]schedule.Selected, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT s.course_code, s.session_id, s.days, s.time, s.term, c.average_price
		FROM selections sel
		JOIN sections s ON s.course_code = sel.course_code AND s.session_id = sel.session_id
		JOIN courses c ON c.code = s.course_code
		ORDER BY sel.selected_at, s.course_code, s.session_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []schedule.Selected
	for rows.Next() {
		var s schedule.Selected
		if err := rows.Scan(&s.CourseCode, &s.SessionID, &s.Days, &s.Time, &s.Term, &s.Price); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ClearSelections empties the cart.
func (d *DB) ClearSelections(ctx context.Context) error {
	_, err := d.sql.ExecContext(ctx, `DELETE FROM selections`)
	return err
}
