package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coursedeck/coursedeck/pkg/catalog"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS courses (
  code              TEXT PRIMARY KEY,
  title             TEXT NOT NULL DEFAULT '',
  course_rating     REAL,
  instructor_rating REAL,
  difficulty_rating REAL,
  work_rating       REAL,
  average_price     REAL NOT NULL DEFAULT 0,
  terms             TEXT NOT NULL DEFAULT '',
  credits           TEXT NOT NULL DEFAULT '',
  position          INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sections (
  course_code TEXT NOT NULL,
  session_id  TEXT NOT NULL,
  days        TEXT NOT NULL DEFAULT '',
  time        TEXT NOT NULL DEFAULT '',
  term        TEXT NOT NULL DEFAULT '',
  credits     TEXT NOT NULL DEFAULT '',
  meetings    TEXT NOT NULL DEFAULT '',
  position    INTEGER NOT NULL,
  PRIMARY KEY (course_code, session_id)
);
CREATE INDEX IF NOT EXISTS idx_sections_course ON sections(course_code);
CREATE TABLE IF NOT EXISTS instructors (
  course_code       TEXT NOT NULL,
  session_id        TEXT NOT NULL,
  position          INTEGER NOT NULL,
  name              TEXT NOT NULL DEFAULT '',
  course_rating     REAL,
  instructor_rating REAL,
  difficulty_rating REAL,
  work_rating       REAL,
  PRIMARY KEY (course_code, session_id, position)
);
CREATE TABLE IF NOT EXISTS selections (
  course_code TEXT NOT NULL,
  session_id  TEXT NOT NULL,
  selected_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (course_code, session_id)
);
CREATE TABLE IF NOT EXISTS catalog_changes (
  id          INTEGER PRIMARY KEY,
  occurred_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  code        TEXT NOT NULL,
  change_type TEXT NOT NULL CHECK (change_type IN ('added','updated','removed'))
);
CREATE INDEX IF NOT EXISTS idx_changes_time ON catalog_changes(occurred_at);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// ReplaceCatalog swaps the stored catalog for a freshly built one inside a
// single transaction, records which courses were added, updated or removed
// compared to the previous load, and prunes selections whose section no
// longer exists. The catalog is never observable half-replaced.
func (d *DB) ReplaceCatalog(ctx context.Context, courses []catalog.Course) ([]Change, error) {
	now := time.Now().UTC()

	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := fingerprintCourses(ctx, tx)
	if err != nil {
		return nil, err
	}

	var changes []Change
	seen := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		seen[c.Code] = struct{}{}
		fp, existed := existing[c.Code]
		switch {
		case !existed:
			changes = append(changes, Change{OccurredAt: now, Code: c.Code, ChangeType: "added"})
		case fp != courseFingerprint(c):
			changes = append(changes, Change{OccurredAt: now, Code: c.Code, ChangeType: "updated"})
		}
	}
	for code := range existing {
		if _, ok := seen[code]; !ok {
			changes = append(changes, Change{OccurredAt: now, Code: code, ChangeType: "removed"})
		}
	}

	for _, stmt := range []string{
		"DELETE FROM instructors",
		"DELETE FROM sections",
		"DELETE FROM courses",
	} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return nil, err
		}
	}

	for ci, c := range courses {
		_, err = tx.ExecContext(ctx, `INSERT INTO courses(code, title, course_rating, instructor_rating, difficulty_rating, work_rating, average_price, terms, credits, position) VALUES(?,?,?,?,?,?,?,?,?,?)`,
			c.Code, c.Title, nullRating(c.CourseRating), nullRating(c.InstructorRating), nullRating(c.DifficultyRating), nullRating(c.WorkRating), c.AveragePrice, c.Terms, c.Credits, ci)
		if err != nil {
			return nil, err
		}
		for si, s := range c.Sections {
			_, err = tx.ExecContext(ctx, `INSERT INTO sections(course_code, session_id, days, time, term, credits, meetings, position) VALUES(?,?,?,?,?,?,?,?)`,
				c.Code, s.SessionID, s.Days, s.Time, s.Term, s.Credits, s.Meetings, si)
			if err != nil {
				return nil, err
			}
			for ii, in := range s.Instructors {
				_, err = tx.ExecContext(ctx, `INSERT INTO instructors(course_code, session_id, position, name, course_rating, instructor_rating, difficulty_rating, work_rating) VALUES(?,?,?,?,?,?,?,?)`,
					c.Code, s.SessionID, ii, in.Name, nullRating(in.CourseRating), nullRating(in.InstructorRating), nullRating(in.DifficultyRating), nullRating(in.WorkRating))
				if err != nil {
					return nil, err
				}
			}
		}
	}

	// Sweep selections that no longer point at a live section.
	if _, err = tx.ExecContext(ctx, `DELETE FROM selections WHERE NOT EXISTS (
		SELECT 1 FROM sections s WHERE s.course_code = selections.course_code AND s.session_id = selections.session_id
	)`); err != nil {
		return nil, err
	}

	for _, ch := range changes {
		if _, err = tx.ExecContext(ctx, `INSERT INTO catalog_changes(occurred_at, code, change_type) VALUES(?,?,?)`,
			ch.OccurredAt, ch.Code, ch.ChangeType); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return changes, nil
}

func fingerprintCourses(ctx context.Context, tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT c.code, c.title, c.terms, c.credits, c.average_price,
		(SELECT COUNT(*) FROM sections s WHERE s.course_code = c.code) FROM courses c`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var code, title, terms, credits string
		var price float64
		var sectionCount int
		if err := rows.Scan(&code, &title, &terms, &credits, &price, &sectionCount); err != nil {
			return nil, err
		}
		out[code] = fingerprint(title, terms, credits, price, sectionCount)
	}
	return out, rows.Err()
}

func courseFingerprint(c catalog.Course) string {
	return fingerprint(c.Title, c.Terms, c.Credits, c.AveragePrice, len(c.Sections))
}

func fingerprint(title, terms, credits string, price float64, sections int) string {
	return fmt.Sprintf("%s|%s|%s|%g|%d", title, terms, credits, price, sections)
}

func nullRating(r *float64) sql.NullFloat64 {
	if r == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *r, Valid: true}
}

func ratingPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// LoadCatalog reconstructs the full course hierarchy in stored order.
func (d *DB) LoadCatalog(ctx context.Context) ([]catalog.Course, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT code, title, course_rating, instructor_rating, difficulty_rating, work_rating, average_price, terms, credits FROM courses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []catalog.Course
	index := make(map[string]int)
	for rows.Next() {
		var c catalog.Course
		var cr, ir, dr, wr sql.NullFloat64
		if err := rows.Scan(&c.Code, &c.Title, &cr, &ir, &dr, &wr, &c.AveragePrice, &c.Terms, &c.Credits); err != nil {
			return nil, err
		}
		c.CourseRating = ratingPtr(cr)
		c.InstructorRating = ratingPtr(ir)
		c.DifficultyRating = ratingPtr(dr)
		c.WorkRating = ratingPtr(wr)
		index[c.Code] = len(courses)
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	secRows, err := d.sql.QueryContext(ctx, `SELECT course_code, session_id, days, time, term, credits, meetings FROM sections ORDER BY course_code, position`)
	if err != nil {
		return nil, err
	}
	defer secRows.Close()

	secIndex := make(map[string]map[string]int)
	for secRows.Next() {
		var code string
		var s catalog.Section
		if err := secRows.Scan(&code, &s.SessionID, &s.Days, &s.Time, &s.Term, &s.Credits, &s.Meetings); err != nil {
			return nil, err
		}
		ci, ok := index[code]
		if !ok {
			continue
		}
		if secIndex[code] == nil {
			secIndex[code] = make(map[string]int)
		}
		secIndex[code][s.SessionID] = len(courses[ci].Sections)
		courses[ci].Sections = append(courses[ci].Sections, s)
	}
	if err := secRows.Err(); err != nil {
		return nil, err
	}

	insRows, err := d.sql.QueryContext(ctx, `SELECT course_code, session_id, name, course_rating, instructor_rating, difficulty_rating, work_rating FROM instructors ORDER BY course_code, session_id, position`)
	if err != nil {
		return nil, err
	}
	defer insRows.Close()

	for insRows.Next() {
		var code, session string
		var in catalog.Instructor
		var cr, ir, dr, wr sql.NullFloat64
		if err := insRows.Scan(&code, &session, &in.Name, &cr, &ir, &dr, &wr); err != nil {
			return nil, err
		}
		in.CourseRating = ratingPtr(cr)
		in.InstructorRating = ratingPtr(ir)
		in.DifficultyRating = ratingPtr(dr)
		in.WorkRating = ratingPtr(wr)
		ci, ok := index[code]
		if !ok {
			continue
		}
		si, ok := secIndex[code][session]
		if !ok {
			continue
		}
		courses[ci].Sections[si].Instructors = append(courses[ci].Sections[si].Instructors, in)
	}
	return courses, insRows.Err()
}
